// Package observability expõe os coletores prometheus da API.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Métricas de negócio
	BrandsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brand_projection_brands_total",
		Help: "Número de marcas na carteira na última leitura",
	})

	ProjectedRevenueTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brand_projection_projected_revenue_total",
		Help: "Receita total projetada nos 12 meses na última leitura",
	})

	ProjectionComputationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brand_projection_computations_total",
		Help: "Total de cálculos de projeção por visão",
	}, []string{"view"})

	BrandMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brand_projection_brand_mutations_total",
		Help: "Total de alterações na carteira de marcas",
	}, []string{"operation", "status"})

	SnapshotRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brand_projection_snapshot_runs_total",
		Help: "Total de execuções do snapshot de projeção",
	}, []string{"trigger", "status"})

	SnapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brand_projection_snapshot_duration_seconds",
		Help:    "Duração da geração do snapshot de projeção",
		Buckets: prometheus.DefBuckets,
	})

	// Métricas de infraestrutura
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brand_projection_http_requests_total",
		Help: "Total de requisições HTTP",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "brand_projection_http_request_duration_seconds",
		Help:    "Latência das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
