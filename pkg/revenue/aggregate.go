package revenue

// MonthlyTotal é a soma de todas as marcas em um slot.
type MonthlyTotal struct {
	Month             string  `json:"month"`
	MonthIndex        int     `json:"monthIndex"`
	Revenue           float64 `json:"revenue"`
	RecurringRevenue  float64 `json:"recurringRevenue"`
	LaunchPlanRevenue float64 `json:"launchPlanRevenue"`
}

// Aggregation junta os totais mensais e a série de cada marca.
type Aggregation struct {
	MonthlyTotals []MonthlyTotal `json:"monthlyTotals"`
	// BrandPerformances é indexado pelo nome da marca. Nomes repetidos
	// sobrescrevem a série anterior no mapa; os totais continuam somando
	// todas as marcas.
	BrandPerformances map[string][]MonthlyPerformance `json:"brandPerformances"`
}

// Aggregate soma o TotalRevenue de todas as marcas slot a slot. Lista vazia
// gera 12 totais zerados.
func Aggregate(brands []Brand) Aggregation {
	totals := emptyTotals()
	performances := make(map[string][]MonthlyPerformance, len(brands))

	for _, brand := range brands {
		performance := BrandPerformance(brand)
		performances[brand.Name] = performance

		for i, entry := range performance {
			totals[i].Revenue += entry.TotalRevenue
			totals[i].RecurringRevenue += entry.RecurringRevenue
			totals[i].LaunchPlanRevenue += entry.LaunchPlanRevenue
		}
	}

	return Aggregation{
		MonthlyTotals:     totals,
		BrandPerformances: performances,
	}
}

func emptyTotals() []MonthlyTotal {
	totals := make([]MonthlyTotal, ProjectionMonths)
	for i := range totals {
		totals[i] = MonthlyTotal{Month: Months[i], MonthIndex: i}
	}
	return totals
}
