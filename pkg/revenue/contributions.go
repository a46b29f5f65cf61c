package revenue

// BrandContribution é a participação de uma marca na receita do período.
type BrandContribution struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Category               string  `json:"category"`
	TotalRevenue           float64 `json:"totalRevenue"`
	ContributionPercentage float64 `json:"contributionPercentage"`
}

// Contributions soma os 12 slots de cada marca e calcula o percentual sobre o
// total geral. Com total geral zero todos os percentuais ficam zero.
func Contributions(brands []Brand) []BrandContribution {
	contributions := make([]BrandContribution, 0, len(brands))
	grandTotal := 0.0

	for _, brand := range brands {
		total := 0.0
		for _, entry := range BrandPerformance(brand) {
			total += entry.TotalRevenue
		}
		grandTotal += total

		contributions = append(contributions, BrandContribution{
			ID:           brand.ID,
			Name:         brand.Name,
			Category:     brand.Category,
			TotalRevenue: total,
		})
	}

	if grandTotal > 0 {
		for i := range contributions {
			contributions[i].ContributionPercentage = contributions[i].TotalRevenue / grandTotal * 100
		}
	}

	return contributions
}

// Scenario é um cenário fixo para o último mês da projeção.
type Scenario struct {
	Scenario string  `json:"scenario"`
	Value    float64 `json:"value"`
}

// Scenarios são valores de referência definidos pelo negócio para Sep 2026.
// Não são derivados da carteira.
var Scenarios = []Scenario{
	{Scenario: "Conservative", Value: 919146},
	{Scenario: "Realistic", Value: 1081348},
	{Scenario: "Optimistic", Value: 1297618},
}
