package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{
			"status":   "ok",
			"time":     time.Now().UTC(),
			"database": "ok",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				status = http.StatusServiceUnavailable
				body["status"] = "degraded"
				body["database"] = "unavailable"
			}
		}

		if err := utils.WriteJSON(w, status, body); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
