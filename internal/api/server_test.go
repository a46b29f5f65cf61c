package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	authMocks "github.com/vfg2006/brand-projection-api/internal/usecases/authenticating/mocks"
	brandMocks "github.com/vfg2006/brand-projection-api/internal/usecases/branding/mocks"
	projMocks "github.com/vfg2006/brand-projection-api/internal/usecases/projecting/mocks"
	"github.com/vfg2006/brand-projection-api/pkg/log"
)

func newTestServer(t *testing.T) (*Server, *authMocks.MockAuthenticator, *brandMocks.MockBrandService) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	auth := authMocks.NewMockAuthenticator(ctrl)
	brands := brandMocks.NewMockBrandService(ctrl)
	projector := projMocks.NewMockProjector(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, nil, auth, brands, projector, nil)
	require.NoError(t, err)

	return srv, auth, brands
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "brand_projection_http_requests_total")
}

func TestServer_ProtectedRouteRequiresToken(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AuthenticatedBrandList(t *testing.T) {
	srv, auth, brands := newTestServer(t)

	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: "g", UserRoleID: domain.RoleGuest}, nil)
	brands.EXPECT().ListBrands(gomock.Any()).Return([]*domain.Brand{{ID: "b1", Name: "Crush"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/brands", nil)
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestServer_CronStatusWithoutScheduler(t *testing.T) {
	srv, auth, _ := newTestServer(t)

	auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{UserID: "a", UserRoleID: domain.RoleAdmin}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}
