package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
)

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var brandErr *branding.BrandError
	if errors.As(err, &brandErr) {
		var details any
		if len(brandErr.Fields) > 0 {
			details = brandErr.Fields
		}
		if apiErrors.StatusFor(brandErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
			apiErrors.WriteError(w, brandErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, brandErr.Code, brandErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
			apiErrors.WriteError(w, authErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, projecting.ErrInvalidCommissionRate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, projecting.ErrDatabaseOperation):
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	default:
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
