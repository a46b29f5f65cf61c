package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

func brandIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da marca não fornecido", nil)
		return "", false
	}
	return id, true
}

// decodeBrandBody lê o corpo como objeto solto; a coerção dos campos fica com
// a normalização do caso de uso
func decodeBrandBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var raw map[string]any
	if err := utils.DecodeJSON(r, &raw); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo de marca inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição deve ser um objeto JSON", nil)
		return nil, false
	}
	if raw == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição deve ser um objeto JSON", nil)
		return nil, false
	}
	return raw, true
}

func ListBrands(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.ListBrands(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar marcas")
			return
		}

		if brands == nil {
			brands = []*domain.Brand{}
		}

		_ = utils.WriteJSON(w, http.StatusOK, domain.BrandListResponse{Success: true, Brands: brands})
	}
}

func GetBrand(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := brandIDParam(w, r)
		if !ok {
			return
		}

		brand, err := service.GetBrand(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar marca")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, domain.BrandResponse{Success: true, Brand: brand})
	}
}

func CreateBrand(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := decodeBrandBody(w, r)
		if !ok {
			return
		}

		brand, err := service.CreateBrand(r.Context(), raw)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar marca")
			return
		}

		log.ForContext(r.Context()).WithField("brand_id", brand.ID).Info("Marca criada")

		_ = utils.WriteJSON(w, http.StatusCreated, domain.BrandResponse{Success: true, Brand: brand})
	}
}

func UpdateBrand(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := brandIDParam(w, r)
		if !ok {
			return
		}

		raw, ok := decodeBrandBody(w, r)
		if !ok {
			return
		}

		brand, err := service.UpdateBrand(r.Context(), id, raw)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar marca")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, domain.BrandResponse{Success: true, Brand: brand})
	}
}

func DeleteBrand(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := brandIDParam(w, r)
		if !ok {
			return
		}

		if err := service.DeleteBrand(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover marca")
			return
		}

		log.ForContext(r.Context()).WithField("brand_id", id).Info("Marca removida")

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
	}
}

// ResetBrands substitui a carteira pelas marcas padrão
func ResetBrands(service branding.BrandService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands, err := service.ResetBrands(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar marcas padrão")
			return
		}

		log.ForContext(r.Context()).Infof("Carteira restaurada com %d marcas", len(brands))

		_ = utils.WriteJSON(w, http.StatusOK, domain.BrandListResponse{Success: true, Brands: brands})
	}
}
