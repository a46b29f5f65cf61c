package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

const (
	defaultSnapshotLimit = 30
	maxSnapshotLimit     = 365
)

func GetDashboard(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := service.Dashboard(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar painel de projeção")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "dashboard": dashboard})
	}
}

func GetMonthlyProjection(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projection, err := service.MonthlyProjection(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular projeção mensal")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "projection": projection})
	}
}

func GetQuarterly(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quarters, err := service.Quarterly(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular trimestres")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "quarterly": quarters})
	}
}

func GetKeyMetrics(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := service.KeyMetrics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular métricas")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "metrics": metrics})
	}
}

func GetContributions(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contributions, err := service.Contributions(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular contribuições")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "contributions": contributions})
	}
}

// GetCommission aceita ?rate= para simular outra taxa sem alterar a salva
func GetCommission(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rate *float64
		if raw := strings.TrimSpace(r.URL.Query().Get("rate")); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro rate deve ser numérico", nil)
				return
			}
			rate = &parsed
		}

		summary, err := service.Commission(r.Context(), rate)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular comissões")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "commission": summary})
	}
}

func GetBrandPerformance(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := brandIDParam(w, r)
		if !ok {
			return
		}

		performance, err := service.BrandPerformance(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular desempenho da marca")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "performance": performance})
	}
}

func ListSnapshots(service projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultSnapshotLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			limit = min(parsed, maxSnapshotLimit)
		}

		snapshots, err := service.ListSnapshots(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar snapshots")
			return
		}

		if snapshots == nil {
			snapshots = []*domain.ProjectionSnapshot{}
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "snapshots": snapshots})
	}
}
