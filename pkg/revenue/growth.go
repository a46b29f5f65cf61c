package revenue

import "math"

// MonthOverMonthGrowth devolve o crescimento percentual de cada slot em
// relação ao anterior. O slot 0 e qualquer slot cujo anterior não seja > 0
// ficam nil (crescimento indefinido), nunca Inf ou NaN.
func MonthOverMonthGrowth(totals []MonthlyTotal) []*float64 {
	growth := make([]*float64, len(totals))

	for i := 1; i < len(totals); i++ {
		previous := totals[i-1].Revenue
		if previous <= 0 {
			continue
		}
		value := (totals[i].Revenue - previous) / previous * 100
		growth[i] = &value
	}

	return growth
}

// ProjectionPoint é uma linha do gráfico de projeção.
type ProjectionPoint struct {
	Month      string   `json:"month"`
	Revenue    float64  `json:"revenue"`
	Quarter    string   `json:"quarter"`
	MonthNum   int      `json:"monthNum"`
	Projected  bool     `json:"projected"`
	MonthIndex int      `json:"monthIndex"`
	Growth     *float64 `json:"growth"`
}

// ProjectionSeries converte os totais em linhas de gráfico. A receita é
// arredondada para unidades inteiras; o crescimento usa os valores exatos.
// Só o último slot é marcado como projetado.
func ProjectionSeries(totals []MonthlyTotal) []ProjectionPoint {
	growth := MonthOverMonthGrowth(totals)
	points := make([]ProjectionPoint, len(totals))

	for i, total := range totals {
		points[i] = ProjectionPoint{
			Month:      total.Month,
			Revenue:    math.Round(total.Revenue),
			Quarter:    QuarterLabels[QuarterOf(total.MonthIndex)],
			MonthNum:   i + 1,
			Projected:  i == ProjectionMonths-1,
			MonthIndex: total.MonthIndex,
			Growth:     growth[i],
		}
	}

	return points
}
