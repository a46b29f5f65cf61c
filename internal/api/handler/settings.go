package handler

import (
	"net/http"

	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/middleware"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

type commissionRateRequest struct {
	Rate *float64 `json:"rate"`
}

func GetCommissionRate(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rate, err := service.CommissionRate(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ler taxa de comissão")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, domain.CommissionRate{Rate: rate})
	}
}

func UpdateCommissionRate(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commissionRateRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Rate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo rate é obrigatório", nil)
			return
		}

		rate, err := service.SetCommissionRate(r.Context(), *req.Rate)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar taxa de comissão")
			return
		}

		logger := log.ForContext(r.Context())
		if claims, ok := middleware.UserFromContext(r.Context()); ok {
			logger = logger.WithField("user_id", claims.UserID)
		}
		logger.Infof("Taxa de comissão alterada para %.2f%%", rate)

		_ = utils.WriteJSON(w, http.StatusOK, domain.CommissionRate{Rate: rate})
	}
}
