package revenue

import "math"

// BrandPerformance calcula os 12 slots mensais de uma marca, em ordem.
//
// Antes do mês inicial a receita é zero. A partir dele a receita recorrente
// cresce por juros compostos: StartingSales * (1 + taxa)^t, com t meses desde
// a ativação. A taxa de lançamento entra uma única vez, no mês inicial.
func BrandPerformance(brand Brand) []MonthlyPerformance {
	performance := make([]MonthlyPerformance, ProjectionMonths)

	for i := 0; i < ProjectionMonths; i++ {
		entry := MonthlyPerformance{
			Month:      Months[i],
			MonthIndex: i,
			IsActive:   i >= brand.StartingMonth,
			Brand:      brand.Name,
			Category:   brand.Category,
		}

		if entry.IsActive {
			monthsSinceStart := i - brand.StartingMonth
			entry.RecurringRevenue = compound(brand.StartingSales, brand.MonthlyGrowthRate, monthsSinceStart)

			if brand.HasLaunchPlan && monthsSinceStart == 0 {
				entry.LaunchPlanRevenue = brand.LaunchPlanFee
			}
		}

		entry.TotalRevenue = entry.RecurringRevenue + entry.LaunchPlanRevenue
		performance[i] = entry
	}

	return performance
}

// BrandMonthRevenue retorna apenas a receita recorrente de um slot.
func BrandMonthRevenue(brand Brand, monthIndex int) float64 {
	if monthIndex < brand.StartingMonth {
		return 0
	}
	return compound(brand.StartingSales, brand.MonthlyGrowthRate, monthIndex-brand.StartingMonth)
}

// compound aplica o crescimento percentual por t meses. Taxas negativas
// produzem decaimento geométrico e não são limitadas em zero.
func compound(startingSales, growthRatePercent float64, t int) float64 {
	if t == 0 {
		return startingSales
	}
	return startingSales * math.Pow(1+growthRatePercent/100, float64(t))
}
