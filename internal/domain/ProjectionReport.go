package domain

import (
	"time"

	"github.com/vfg2006/brand-projection-api/pkg/revenue"
)

// Dashboard reúne todas as visões calculadas sobre o mesmo snapshot de marcas.
type Dashboard struct {
	GeneratedAt       time.Time                               `json:"generatedAt"`
	BrandCount        int                                     `json:"brandCount"`
	Months            []string                                `json:"months"`
	Projection        []revenue.ProjectionPoint               `json:"projection"`
	BrandPerformances map[string][]revenue.MonthlyPerformance `json:"brandPerformances"`
	Quarterly         []revenue.Quarter                       `json:"quarterly"`
	KeyMetrics        revenue.KeyMetricsResult                `json:"keyMetrics"`
	LaunchPlan        revenue.LaunchPlanSummary               `json:"launchPlan"`
	Commission        revenue.CommissionSummaryResult         `json:"commission"`
	Contributions     []revenue.BrandContribution             `json:"contributions"`
	Scenarios         []revenue.Scenario                      `json:"scenarios"`
	Formatted         FormattedMetrics                        `json:"formatted"`
}

// FormattedMetrics traz os valores de destaque já formatados em dólar.
type FormattedMetrics struct {
	TotalRevenue             string `json:"totalRevenue"`
	TotalRecurringRevenue    string `json:"totalRecurringRevenue"`
	TotalLaunchPlanRevenue   string `json:"totalLaunchPlanRevenue"`
	ZidLaunchPlanCommission  string `json:"zidLaunchPlanCommission"`
	AverageMonthlyRevenue    string `json:"averageMonthlyRevenue"`
	PeakMonthRevenue         string `json:"peakMonthRevenue"`
	TotalCommission          string `json:"totalCommission"`
	AverageMonthlyCommission string `json:"averageMonthlyCommission"`
}

type KeyMetricsResponse struct {
	KeyMetrics revenue.KeyMetricsResult  `json:"keyMetrics"`
	LaunchPlan revenue.LaunchPlanSummary `json:"launchPlan"`
	Formatted  FormattedMetrics          `json:"formatted"`
}

type BrandPerformanceResponse struct {
	Brand        *Brand                       `json:"brand"`
	Performance  []revenue.MonthlyPerformance `json:"performance"`
	TotalRevenue float64                      `json:"totalRevenue"`
	Formatted    string                       `json:"formatted"`
}

type CommissionRate struct {
	Rate float64 `json:"rate"`
}
