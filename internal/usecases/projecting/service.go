// Package projecting monta os relatórios de projeção a partir de um snapshot
// imutável da carteira de marcas.
package projecting

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/infrastructure/repository"
	"github.com/vfg2006/brand-projection-api/internal/config"
	"github.com/vfg2006/brand-projection-api/internal/domain"
	"github.com/vfg2006/brand-projection-api/internal/observability"
	"github.com/vfg2006/brand-projection-api/internal/usecases/branding"
	"github.com/vfg2006/brand-projection-api/pkg/revenue"
	"github.com/vfg2006/brand-projection-api/pkg/utils"
)

const (
	minCommissionRate = 0
	maxCommissionRate = 100
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Projector interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	MonthlyProjection(ctx context.Context) ([]revenue.ProjectionPoint, error)
	Quarterly(ctx context.Context) ([]revenue.Quarter, error)
	KeyMetrics(ctx context.Context) (*domain.KeyMetricsResponse, error)
	Contributions(ctx context.Context) ([]revenue.BrandContribution, error)
	Commission(ctx context.Context, rate *float64) (*revenue.CommissionSummaryResult, error)
	BrandPerformance(ctx context.Context, brandID string) (*domain.BrandPerformanceResponse, error)
	TakeSnapshot(ctx context.Context) (*domain.ProjectionSnapshot, error)
	ListSnapshots(ctx context.Context, limit uint64) ([]*domain.ProjectionSnapshot, error)
	CommissionRate(ctx context.Context) (float64, error)
	SetCommissionRate(ctx context.Context, rate float64) (float64, error)
}

type Service struct {
	brandService branding.BrandService
	settingsRepo repository.SettingsRepository
	snapshotRepo repository.ProjectionSnapshotRepository
	cfg          *config.Config
	now          func() time.Time
}

func NewService(
	brandService branding.BrandService,
	settingsRepo repository.SettingsRepository,
	snapshotRepo repository.ProjectionSnapshotRepository,
	cfg *config.Config,
) Projector {
	return &Service{
		brandService: brandService,
		settingsRepo: settingsRepo,
		snapshotRepo: snapshotRepo,
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// snapshot lê a carteira uma única vez; todas as visões de uma chamada usam
// a mesma lista.
func (s *Service) snapshot(ctx context.Context, view string) ([]revenue.Brand, revenue.Aggregation, error) {
	brands, err := s.brandService.ListBrands(ctx)
	if err != nil {
		return nil, revenue.Aggregation{}, err
	}

	snapshot := domain.ToRevenueBrands(brands)
	aggregation := revenue.Aggregate(snapshot)

	observability.ProjectionComputationsTotal.WithLabelValues(view).Inc()

	return snapshot, aggregation, nil
}

func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	rate, err := s.CommissionRate(ctx)
	if err != nil {
		return nil, err
	}

	brands, aggregation, err := s.snapshot(ctx, "dashboard")
	if err != nil {
		return nil, err
	}

	metrics := revenue.KeyMetrics(aggregation.MonthlyTotals, brands)
	commission := revenue.CommissionSummary(aggregation.MonthlyTotals, metrics, rate)

	observability.ProjectedRevenueTotal.Set(metrics.TotalRevenue)

	return &domain.Dashboard{
		GeneratedAt:       s.now(),
		BrandCount:        len(brands),
		Months:            append([]string(nil), revenue.Months[:]...),
		Projection:        revenue.ProjectionSeries(aggregation.MonthlyTotals),
		BrandPerformances: aggregation.BrandPerformances,
		Quarterly:         revenue.QuarterlyRollup(aggregation.MonthlyTotals),
		KeyMetrics:        metrics,
		LaunchPlan:        revenue.LaunchPlanMetrics(brands),
		Commission:        commission,
		Contributions:     revenue.Contributions(brands),
		Scenarios:         revenue.Scenarios,
		Formatted:         formatMetrics(metrics, &commission),
	}, nil
}

func (s *Service) MonthlyProjection(ctx context.Context) ([]revenue.ProjectionPoint, error) {
	_, aggregation, err := s.snapshot(ctx, "monthly")
	if err != nil {
		return nil, err
	}

	return revenue.ProjectionSeries(aggregation.MonthlyTotals), nil
}

func (s *Service) Quarterly(ctx context.Context) ([]revenue.Quarter, error) {
	_, aggregation, err := s.snapshot(ctx, "quarterly")
	if err != nil {
		return nil, err
	}

	return revenue.QuarterlyRollup(aggregation.MonthlyTotals), nil
}

func (s *Service) KeyMetrics(ctx context.Context) (*domain.KeyMetricsResponse, error) {
	brands, aggregation, err := s.snapshot(ctx, "metrics")
	if err != nil {
		return nil, err
	}

	metrics := revenue.KeyMetrics(aggregation.MonthlyTotals, brands)

	return &domain.KeyMetricsResponse{
		KeyMetrics: metrics,
		LaunchPlan: revenue.LaunchPlanMetrics(brands),
		Formatted:  formatMetrics(metrics, nil),
	}, nil
}

func (s *Service) Contributions(ctx context.Context) ([]revenue.BrandContribution, error) {
	brands, _, err := s.snapshot(ctx, "contributions")
	if err != nil {
		return nil, err
	}

	return revenue.Contributions(brands), nil
}

// Commission calcula o resumo de comissões. Sem taxa informada usa a taxa
// salva nas configurações.
func (s *Service) Commission(ctx context.Context, rate *float64) (*revenue.CommissionSummaryResult, error) {
	var ratePercent float64
	if rate != nil {
		if err := validateRate(*rate); err != nil {
			return nil, err
		}
		ratePercent = *rate
	} else {
		stored, err := s.CommissionRate(ctx)
		if err != nil {
			return nil, err
		}
		ratePercent = stored
	}

	brands, aggregation, err := s.snapshot(ctx, "commission")
	if err != nil {
		return nil, err
	}

	metrics := revenue.KeyMetrics(aggregation.MonthlyTotals, brands)
	summary := revenue.CommissionSummary(aggregation.MonthlyTotals, metrics, ratePercent)

	return &summary, nil
}

func (s *Service) BrandPerformance(ctx context.Context, brandID string) (*domain.BrandPerformanceResponse, error) {
	brand, err := s.brandService.GetBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}

	performance := revenue.BrandPerformance(brand.ToRevenue())
	total := 0.0
	for _, entry := range performance {
		total += entry.TotalRevenue
	}

	observability.ProjectionComputationsTotal.WithLabelValues("brand").Inc()

	return &domain.BrandPerformanceResponse{
		Brand:        brand,
		Performance:  performance,
		TotalRevenue: total,
		Formatted:    revenue.FormatCurrency(total),
	}, nil
}

// TakeSnapshot calcula as métricas da carteira atual e persiste o resumo.
func (s *Service) TakeSnapshot(ctx context.Context) (*domain.ProjectionSnapshot, error) {
	rate, err := s.CommissionRate(ctx)
	if err != nil {
		return nil, err
	}

	brands, aggregation, err := s.snapshot(ctx, "snapshot")
	if err != nil {
		return nil, err
	}

	metrics := revenue.KeyMetrics(aggregation.MonthlyTotals, brands)

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateID, err)
	}

	snapshot := &domain.ProjectionSnapshot{
		ID:                     id,
		TakenAt:                s.now().Truncate(time.Microsecond),
		BrandCount:             len(brands),
		TotalRevenue:           metrics.TotalRevenue,
		TotalRecurringRevenue:  metrics.TotalRecurringRevenue,
		TotalLaunchPlanRevenue: metrics.TotalLaunchPlanRevenue,
		LaunchPlanCommission:   metrics.ZidLaunchPlanCommission,
		CommissionRate:         rate,
		OngoingCommission:      revenue.OngoingCommission(metrics.TotalRecurringRevenue, rate),
		AverageMonthlyRevenue:  metrics.AverageMonthlyRevenue,
		PeakMonth:              metrics.PeakMonth,
		PeakMonthRevenue:       metrics.PeakMonthRevenue,
	}

	if err := s.snapshotRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	observability.ProjectedRevenueTotal.Set(metrics.TotalRevenue)

	return snapshot, nil
}

func (s *Service) ListSnapshots(ctx context.Context, limit uint64) ([]*domain.ProjectionSnapshot, error) {
	snapshots, err := s.snapshotRepo.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return snapshots, nil
}

// CommissionRate retorna a taxa salva ou, na ausência dela, a taxa padrão da
// configuração.
func (s *Service) CommissionRate(ctx context.Context) (float64, error) {
	value, ok, err := s.settingsRepo.GetSetting(ctx, repository.SettingCommissionRate)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	fallback := s.defaultRate()
	if !ok {
		return fallback, nil
	}

	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || validateRate(rate) != nil {
		logrus.WithField("value", value).Warn("Taxa de comissão salva é inválida, usando padrão")
		return fallback, nil
	}

	return rate, nil
}

func (s *Service) SetCommissionRate(ctx context.Context, rate float64) (float64, error) {
	if err := validateRate(rate); err != nil {
		return 0, err
	}

	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.settingsRepo.SetSetting(ctx, repository.SettingCommissionRate, value); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	logrus.Infof("Taxa de comissão atualizada para %s%%", value)

	return rate, nil
}

func (s *Service) defaultRate() float64 {
	if s.cfg == nil {
		return revenue.DefaultCommissionRate
	}
	return s.cfg.Projection.DefaultCommissionRate
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < minCommissionRate || rate > maxCommissionRate {
		return fmt.Errorf("%w: deve estar entre %d e %d", ErrInvalidCommissionRate, minCommissionRate, maxCommissionRate)
	}
	return nil
}

func formatMetrics(metrics revenue.KeyMetricsResult, commission *revenue.CommissionSummaryResult) domain.FormattedMetrics {
	formatted := domain.FormattedMetrics{
		TotalRevenue:            revenue.FormatCurrency(metrics.TotalRevenue),
		TotalRecurringRevenue:   revenue.FormatCurrency(metrics.TotalRecurringRevenue),
		TotalLaunchPlanRevenue:  revenue.FormatCurrency(metrics.TotalLaunchPlanRevenue),
		ZidLaunchPlanCommission: revenue.FormatCurrency(metrics.ZidLaunchPlanCommission),
		AverageMonthlyRevenue:   revenue.FormatCurrency(metrics.AverageMonthlyRevenue),
		PeakMonthRevenue:        revenue.FormatCurrency(metrics.PeakMonthRevenue),
	}

	if commission != nil {
		formatted.TotalCommission = revenue.FormatCurrency(commission.TotalCommission)
		formatted.AverageMonthlyCommission = revenue.FormatCurrency(commission.AverageMonthlyCommission)
	}

	return formatted
}
