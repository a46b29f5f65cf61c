package handler

import (
	"net/http"

	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/middleware"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Username, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithField("user_name", req.Username).Warn("Falha no login")
			}
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		_ = utils.WriteJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, user); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}
