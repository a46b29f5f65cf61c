package revenue

// DefaultCommissionRate é a taxa de comissão recorrente usada quando nenhuma
// outra foi configurada.
const DefaultCommissionRate = 5.0

// MonthlyCommission é a comissão recorrente de um slot.
type MonthlyCommission struct {
	Month      string  `json:"month"`
	MonthIndex int     `json:"monthIndex"`
	Commission float64 `json:"commission"`
}

// CommissionSummaryResult resume a comissão recorrente a uma dada taxa.
type CommissionSummaryResult struct {
	Rate                     float64             `json:"rate"`
	TotalCommission          float64             `json:"totalCommission"`
	AverageMonthlyCommission float64             `json:"averageMonthlyCommission"`
	PeakCommission           float64             `json:"peakCommission"`
	PeakCommissionMonth      string              `json:"peakCommissionMonth"`
	LaunchPlanCommission     float64             `json:"launchPlanCommission"`
	Monthly                  []MonthlyCommission `json:"monthly"`
}

// OngoingCommission aplica a taxa percentual informada pelo chamador sobre a
// receita recorrente total.
func OngoingCommission(totalRecurringRevenue, ratePercent float64) float64 {
	return totalRecurringRevenue * ratePercent / 100
}

// CommissionSeries calcula a comissão recorrente de cada slot. A soma da
// série é igual a OngoingCommission sobre a receita recorrente total.
func CommissionSeries(totals []MonthlyTotal, ratePercent float64) []MonthlyCommission {
	series := make([]MonthlyCommission, len(totals))
	for i, total := range totals {
		series[i] = MonthlyCommission{
			Month:      total.Month,
			MonthIndex: total.MonthIndex,
			Commission: OngoingCommission(total.RecurringRevenue, ratePercent),
		}
	}
	return series
}

// CommissionSummary monta o resumo de comissões a partir dos totais mensais
// e das métricas já calculadas para o mesmo snapshot.
func CommissionSummary(totals []MonthlyTotal, metrics KeyMetricsResult, ratePercent float64) CommissionSummaryResult {
	summary := CommissionSummaryResult{
		Rate:                 ratePercent,
		TotalCommission:      OngoingCommission(metrics.TotalRecurringRevenue, ratePercent),
		LaunchPlanCommission: metrics.ZidLaunchPlanCommission,
		PeakCommissionMonth:  noPeakMonth,
		Monthly:              CommissionSeries(totals, ratePercent),
	}
	summary.AverageMonthlyCommission = summary.TotalCommission / ProjectionMonths

	// Sem pico nas métricas (carteira vazia) o mês de pico fica "N/A"
	if metrics.PeakMonth == noPeakMonth {
		return summary
	}

	for i, month := range summary.Monthly {
		if i == 0 || month.Commission > summary.PeakCommission {
			summary.PeakCommission = month.Commission
			summary.PeakCommissionMonth = month.Month
		}
	}

	return summary
}
