package revenue

// LaunchPlanCommissionRate é a comissão fixa da plataforma sobre as taxas de
// lançamento, em percentual. Constante de negócio, não configurável.
const LaunchPlanCommissionRate = 30

const noPeakMonth = "N/A"

// LaunchPlanSummary resume as taxas de lançamento da carteira.
type LaunchPlanSummary struct {
	TotalLaunchPlanRevenue   float64 `json:"totalLaunchPlanRevenue"`
	ZidLaunchPlanCommission  float64 `json:"zidLaunchPlanCommission"`
	LaunchPlanCommissionRate float64 `json:"launchPlanCommissionRate"`
	BrandsWithLaunchPlans    int     `json:"brandsWithLaunchPlans"`
}

// KeyMetricsResult é o resumo escalar da projeção.
type KeyMetricsResult struct {
	TotalRevenue            float64 `json:"totalRevenue"`
	TotalRecurringRevenue   float64 `json:"totalRecurringRevenue"`
	TotalLaunchPlanRevenue  float64 `json:"totalLaunchPlanRevenue"`
	ZidLaunchPlanCommission float64 `json:"zidLaunchPlanCommission"`
	AverageMonthlyRevenue   float64 `json:"averageMonthlyRevenue"`
	PeakMonthRevenue        float64 `json:"peakMonthRevenue"`
	PeakMonth               string  `json:"peakMonth"`
	BrandsWithLaunchPlans   int     `json:"brandsWithLaunchPlans"`
}

// LaunchPlanMetrics soma as taxas de lançamento direto dos campos das marcas,
// sem olhar para a série mensal.
func LaunchPlanMetrics(brands []Brand) LaunchPlanSummary {
	summary := LaunchPlanSummary{LaunchPlanCommissionRate: LaunchPlanCommissionRate}

	for _, brand := range brands {
		if !brand.HasLaunchPlan {
			continue
		}
		summary.TotalLaunchPlanRevenue += brand.LaunchPlanFee
		summary.BrandsWithLaunchPlans++
	}

	summary.ZidLaunchPlanCommission = summary.TotalLaunchPlanRevenue * LaunchPlanCommissionRate / 100
	return summary
}

// KeyMetrics calcula o resumo a partir dos totais mensais e da lista bruta de
// marcas. A média mensal sempre divide por 12, independente de quantos slots
// estão ativos. Empates no pico ficam com o primeiro slot.
func KeyMetrics(totals []MonthlyTotal, brands []Brand) KeyMetricsResult {
	if len(brands) == 0 || len(totals) == 0 {
		return KeyMetricsResult{PeakMonth: noPeakMonth}
	}

	result := KeyMetricsResult{PeakMonth: noPeakMonth}
	peakIndex := -1
	for i, total := range totals {
		result.TotalRevenue += total.Revenue
		if peakIndex == -1 || total.Revenue > result.PeakMonthRevenue {
			peakIndex = i
			result.PeakMonthRevenue = total.Revenue
		}
	}
	result.PeakMonth = MonthLabel(totals[peakIndex].MonthIndex)
	result.AverageMonthlyRevenue = result.TotalRevenue / ProjectionMonths

	launchPlan := LaunchPlanMetrics(brands)
	result.TotalLaunchPlanRevenue = launchPlan.TotalLaunchPlanRevenue
	result.ZidLaunchPlanCommission = launchPlan.ZidLaunchPlanCommission
	result.BrandsWithLaunchPlans = launchPlan.BrandsWithLaunchPlans
	result.TotalRecurringRevenue = result.TotalRevenue - result.TotalLaunchPlanRevenue

	return result
}
