package revenue

// Brand é a entrada do motor. Os campos já chegam validados e normalizados
// pela camada de cadastro; o motor não aplica defaults nem coerção.
//
// Pré-condição: StartingMonth em 0..11. Valores fora do intervalo não são
// corrigidos aqui.
type Brand struct {
	ID                string
	Name              string
	Category          string
	StartingSales     float64
	MonthlyGrowthRate float64 // percentual ao mês, 15.5 = 15,5%
	StartingMonth     int
	HasLaunchPlan     bool
	LaunchPlanFee     float64
}

// MonthlyPerformance é o resultado de uma marca em um slot do calendário.
type MonthlyPerformance struct {
	Month             string  `json:"month"`
	MonthIndex        int     `json:"monthIndex"`
	IsActive          bool    `json:"isActive"`
	RecurringRevenue  float64 `json:"recurringRevenue"`
	LaunchPlanRevenue float64 `json:"launchPlanRevenue"`
	TotalRevenue      float64 `json:"totalRevenue"`
	Brand             string  `json:"brand"`
	Category          string  `json:"category"`
}
