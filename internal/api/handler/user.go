package handler

import (
	"net/http"

	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

// ListUsers retorna todos os usuários cadastrados
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar usuários")
			return
		}

		if users == nil {
			users = []*domain.User{}
		}

		_ = utils.WriteJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"users":   users,
		})
	}
}

// CreateUser cria um novo usuário
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Corpo inválido ao criar usuário")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		log.ForContext(r.Context()).WithField("user_id", user.ID).Info("Usuário criado")

		_ = utils.WriteJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"user":    user,
		})
	}
}
