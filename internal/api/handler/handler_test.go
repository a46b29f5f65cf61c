package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/brand-projection-api/internal/api/handler/router"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/brand-projection-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	brandMocks "github.com/vfg2006/brand-projection-api/internal/usecases/branding/mocks"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	projMocks "github.com/vfg2006/brand-projection-api/internal/usecases/projecting/mocks"
	"github.com/vfg2006/brand-projection-api/pkg/apiErrors"
	"github.com/vfg2006/brand-projection-api/pkg/log"
	"github.com/vfg2006/brand-projection-api/pkg/middleware"
	"github.com/vfg2006/brand-projection-api/pkg/revenue"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	log.SetupTestLogger()
}

func withParams(r *http.Request, params ...httprouter.Param) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, httprouter.Params(params))
	return r.WithContext(ctx)
}

func withClaims(r *http.Request, claims *domain.Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, claims))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLogin(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authMocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser(gomock.Any(), "admin", "admin123").Return("jwt-token", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
		rec := httptest.NewRecorder()
		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "jwt-token", body["token"])
		assert.Equal(t, true, body["success"])
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authMocks.NewMockAuthenticator(ctrl)
		service.EXPECT().LoginUser(gomock.Any(), "admin", "errada").Return("",
			authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "u1", "Senha incorreta"))

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"username":"admin","password":"errada"}`))
		rec := httptest.NewRecorder()
		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeBody(t, rec)["code"])
	})

	t.Run("corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := authMocks.NewMockAuthenticator(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{`))
		rec := httptest.NewRecorder()
		Login(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := authMocks.NewMockAuthenticator(ctrl)
	service.EXPECT().GetUserProfile(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Username: "admin", RoleID: domain.RoleAdmin}, nil)

	req := withClaims(httptest.NewRequest(http.MethodGet, "/v1/me", nil), &domain.Claims{UserID: "u1"})
	rec := httptest.NewRecorder()
	GetMe(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody(t, rec)["username"])
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestListBrands(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := brandMocks.NewMockBrandService(ctrl)
	service.EXPECT().ListBrands(gomock.Any()).Return([]*domain.Brand{
		{ID: "b1", Name: "Crush", Category: "Beverages", StartingSales: 1000, MonthlyGrowthRate: 10},
	}, nil)

	rec := httptest.NewRecorder()
	ListBrands(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	brands := body["brands"].([]any)
	require.Len(t, brands, 1)
	assert.Equal(t, "Crush", brands[0].(map[string]any)["name"])
	assert.Equal(t, float64(1000), brands[0].(map[string]any)["startingSales"])
}

func TestListBrands_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := brandMocks.NewMockBrandService(ctrl)
	service.EXPECT().ListBrands(gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	ListBrands(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))

	assert.Contains(t, rec.Body.String(), `"brands":[]`)
}

func TestCreateBrand(t *testing.T) {
	t.Run("repassa o corpo sem tipagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := brandMocks.NewMockBrandService(ctrl)
		service.EXPECT().CreateBrand(gomock.Any(), map[string]any{
			"name":          "Nova",
			"category":      "Food",
			"startingSales": "1500",
		}).Return(&domain.Brand{ID: "n1", Name: "Nova", Category: "Food", StartingSales: 1500}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{"name":"Nova","category":"Food","startingSales":"1500"}`))
		rec := httptest.NewRecorder()
		CreateBrand(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "n1", decodeBody(t, rec)["brand"].(map[string]any)["id"])
	})

	t.Run("erro de validação devolve campos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := brandMocks.NewMockBrandService(ctrl)
		brandErr := branding.NewBrandError(branding.ErrInvalidBrandRecord, apiErrors.ErrInvalidBrandRecord, "name required")
		brandErr.Fields = []branding.FieldError{{Field: "name", Message: "name required"}}
		service.EXPECT().CreateBrand(gomock.Any(), gomock.Any()).Return(nil, brandErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`{"category":"Food"}`))
		rec := httptest.NewRecorder()
		CreateBrand(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, apiErrors.ErrInvalidBrandRecord, body["code"])
		details := body["details"].([]any)
		assert.Equal(t, "name", details[0].(map[string]any)["field"])
	})

	t.Run("corpo não é objeto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := brandMocks.NewMockBrandService(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/v1/brands", strings.NewReader(`[1,2]`))
		rec := httptest.NewRecorder()
		CreateBrand(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeBody(t, rec)["code"])
	})
}

func TestUpdateBrand(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := brandMocks.NewMockBrandService(ctrl)
	service.EXPECT().UpdateBrand(gomock.Any(), "b1", map[string]any{"monthlyGrowthRate": float64(12)}).
		Return(&domain.Brand{ID: "b1", MonthlyGrowthRate: 12}, nil)

	req := withParams(httptest.NewRequest(http.MethodPut, "/v1/brands/b1", strings.NewReader(`{"monthlyGrowthRate":12}`)),
		httprouter.Param{Key: "id", Value: "b1"})
	rec := httptest.NewRecorder()
	UpdateBrand(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteBrand_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := brandMocks.NewMockBrandService(ctrl)
	service.EXPECT().DeleteBrand(gomock.Any(), "x").
		Return(branding.NewBrandErrorWithID(branding.ErrBrandNotFound, apiErrors.ErrBrandNotFound, "x", "Marca não encontrada"))

	req := withParams(httptest.NewRequest(http.MethodDelete, "/v1/brands/x", nil), httprouter.Param{Key: "id", Value: "x"})
	rec := httptest.NewRecorder()
	DeleteBrand(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrBrandNotFound, decodeBody(t, rec)["code"])
}

func TestGetBrand_DatabaseErrorHidesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := brandMocks.NewMockBrandService(ctrl)
	service.EXPECT().GetBrand(gomock.Any(), "b1").
		Return(nil, branding.NewBrandErrorWithID(branding.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "b1", "pq: connection refused"))

	req := withParams(httptest.NewRequest(http.MethodGet, "/v1/brands/b1", nil), httprouter.Param{Key: "id", Value: "b1"})
	rec := httptest.NewRecorder()
	GetBrand(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetCommission(t *testing.T) {
	t.Run("usa a taxa da query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)
		service.EXPECT().Commission(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rate *float64) (*revenue.CommissionSummaryResult, error) {
				require.NotNil(t, rate)
				assert.Equal(t, 7.5, *rate)
				return &revenue.CommissionSummaryResult{Rate: *rate}, nil
			})

		rec := httptest.NewRecorder()
		GetCommission(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/commission?rate=7.5", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("sem taxa usa a salva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)
		service.EXPECT().Commission(gomock.Any(), gomock.Nil()).Return(&revenue.CommissionSummaryResult{Rate: 5}, nil)

		rec := httptest.NewRecorder()
		GetCommission(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/commission", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("taxa não numérica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)

		rec := httptest.NewRecorder()
		GetCommission(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/commission?rate=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("taxa fora da faixa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)
		service.EXPECT().Commission(gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(projecting.ErrInvalidCommissionRate, errors.New("deve estar entre 0 e 100")))

		rec := httptest.NewRecorder()
		GetCommission(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/commission?rate=150", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeBody(t, rec)["code"])
	})
}

func TestListSnapshots_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := projMocks.NewMockProjector(ctrl)
	service.EXPECT().ListSnapshots(gomock.Any(), uint64(defaultSnapshotLimit)).Return(nil, nil)
	service.EXPECT().ListSnapshots(gomock.Any(), uint64(maxSnapshotLimit)).Return([]*domain.ProjectionSnapshot{{ID: "s1"}}, nil)

	rec := httptest.NewRecorder()
	ListSnapshots(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/snapshots", nil))
	assert.Contains(t, rec.Body.String(), `"snapshots":[]`)

	rec = httptest.NewRecorder()
	ListSnapshots(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/snapshots?limit=9999", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	ListSnapshots(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projections/snapshots?limit=0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCommissionRate(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)
		service.EXPECT().SetCommissionRate(gomock.Any(), 8.0).Return(8.0, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings/commission-rate", strings.NewReader(`{"rate":8}`))
		rec := httptest.NewRecorder()
		UpdateCommissionRate(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 8.0, decodeBody(t, rec)["rate"])
	})

	t.Run("campo ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := projMocks.NewMockProjector(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/v1/settings/commission-rate", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		UpdateCommissionRate(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeBody(t, rec)["code"])
	})
}

type fakeSyncJob struct {
	accept    bool
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func TestRunCronJob(t *testing.T) {
	run := func(services CronJobServices, cronType string) *httptest.ResponseRecorder {
		req := withParams(httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil),
			httprouter.Param{Key: "type", Value: cronType})
		rec := httptest.NewRecorder()
		RunCronJob(services).ServeHTTP(rec, req)
		return rec
	}

	t.Run("dispara o snapshot", func(t *testing.T) {
		job := &fakeSyncJob{accept: true}
		rec := run(CronJobServices{ProjectionSnapshotSyncService: job}, CronJobTypeProjectionSnapshot)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})

	t.Run("job em execução", func(t *testing.T) {
		job := &fakeSyncJob{accept: false}
		rec := run(CronJobServices{ProjectionSnapshotSyncService: job}, CronJobTypeProjectionSnapshot)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrJobAlreadyRunning, decodeBody(t, rec)["code"])
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		rec := run(CronJobServices{ProjectionSnapshotSyncService: &fakeSyncJob{accept: true}}, "meta")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("all", func(t *testing.T) {
		job := &fakeSyncJob{accept: true}
		rec := run(CronJobServices{ProjectionSnapshotSyncService: job}, CronJobTypeAll)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, job.triggered)
	})
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler(fakePinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	HealthcheckHandler(fakePinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", decodeBody(t, rec)["status"])
}

func TestRoutes_RoleGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	brands := brandMocks.NewMockBrandService(ctrl)
	projector := projMocks.NewMockProjector(ctrl)

	brands.EXPECT().ListBrands(gomock.Any()).Return([]*domain.Brand{}, nil)

	rt := router.New(
		router.WithRoutes(Brands(brands, projector)...),
		router.WithRoutes(Settings(projector)...),
	)

	guest := &domain.Claims{UserID: "g", UserRoleID: domain.RoleGuest}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/v1/brands", nil), guest))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodPost, "/v1/brands/reset", nil), guest))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodPut, "/v1/settings/commission-rate", strings.NewReader(`{"rate":3}`)), guest))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/v1/nada", nil), guest))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeBody(t, rec)["code"])
}
