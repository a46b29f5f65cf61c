package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/brand-projection-api/internal/api/handler/router"
	"github.com/vfg2006/brand-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	"github.com/vfg2006/brand-projection-api/internal/usecases/projecting"
	"github.com/vfg2006/brand-projection-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Brands(service branding.BrandService, projector projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands",
			Method:      http.MethodGet,
			Handler:     ListBrands(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands",
			Method:      http.MethodPost,
			Handler:     CreateBrand(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/brands/reset",
			Method:      http.MethodPost,
			Handler:     ResetBrands(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodGet,
			Handler:     GetBrand(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBrand(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/brands/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBrand(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/brands/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetBrandPerformance(projector),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Projections(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projections/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyProjection(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/quarterly",
			Method:      http.MethodGet,
			Handler:     GetQuarterly(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/metrics",
			Method:      http.MethodGet,
			Handler:     GetKeyMetrics(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/contributions",
			Method:      http.MethodGet,
			Handler:     GetContributions(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/commission",
			Method:      http.MethodGet,
			Handler:     GetCommission(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projections/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Settings(service projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/commission-rate",
			Method:      http.MethodGet,
			Handler:     GetCommissionRate(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/commission-rate",
			Method:      http.MethodPut,
			Handler:     UpdateCommissionRate(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
