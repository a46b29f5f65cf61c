package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		path       string
		method     string
		header     string
		setupMock  func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "rota pública dispensa token",
			path:       "/v1/login",
			method:     http.MethodPost,
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight dispensa token",
			path:       "/v1/brands",
			method:     http.MethodOptions,
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sem cabeçalho",
			path:       "/v1/brands",
			method:     http.MethodGet,
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "sem prefixo Bearer",
			path:       "/v1/brands",
			method:     http.MethodGet,
			header:     "abc",
			setupMock:  func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token expirado",
			path:   "/v1/brands",
			method: http.MethodGet,
			header: "Bearer velho",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("velho").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "exp"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token inválido",
			path:   "/v1/brands",
			method: http.MethodGet,
			header: "Bearer ruim",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("ruim").Return(nil,
					authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "assinatura"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "falha inesperada na validação",
			path:   "/v1/brands",
			method: http.MethodGet,
			header: "Bearer qualquer",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("qualquer").Return(nil, errors.New("chave indisponível"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
		{
			name:   "token válido",
			path:   "/v1/brands",
			method: http.MethodGet,
			header: "Bearer bom",
			setupMock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().ValidateToken("bom").Return(&domain.Claims{UserID: "u1", UserRoleID: domain.RoleGuest}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authMock := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(authMock)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authMock)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	log.SetupTestLogger()

	withClaims := func(claims *domain.Claims) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/v1/brands/x", nil)
		if claims == nil {
			return req
		}
		ctrl := gomock.NewController(t)
		authMock := mocks.NewMockAuthenticator(ctrl)
		authMock.EXPECT().ValidateToken("t").Return(claims, nil)
		req.Header.Set("Authorization", "Bearer t")

		var captured *http.Request
		AuthMiddleware(authMock)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r
		})).ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, captured)
		return captured
	}

	t.Run("admin passa", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserID: "a", UserRoleID: domain.RoleAdmin}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("convidado é barrado", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserID: "g", UserRoleID: domain.RoleGuest}))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("convidado acessa leitura", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AllRoles()(okHandler()).ServeHTTP(rec, withClaims(&domain.Claims{UserID: "g", UserRoleID: domain.RoleGuest}))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sem usuário no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AllRoles()(okHandler()).ServeHTTP(rec, withClaims(nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors([]string{"http://localhost:3000"})(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()

		Cors([]string{"http://localhost:3000"})(okHandler()).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("curinga e preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/brands", nil)
		req.Header.Set("Origin", "http://qualquer.test")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://qualquer.test", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
