package revenue

import "github.com/vfg2006/brand-projection-api/pkg/utils"

// Quarter é um dos quatro trimestres fixos da projeção.
type Quarter struct {
	Quarter    string  `json:"quarter"`
	Revenue    float64 `json:"revenue"`
	Growth     float64 `json:"growth"`     // arredondado em uma casa
	GrowthRate float64 `json:"growthRate"` // sem arredondamento
}

// QuarterlyRollup agrupa os 12 slots em [0,3), [3,6), [6,9) e [9,12).
//
// O crescimento é relativo ao trimestre anterior. O primeiro trimestre sempre
// tem crescimento 0, assim como qualquer trimestre cujo anterior não seja > 0.
func QuarterlyRollup(totals []MonthlyTotal) []Quarter {
	quarters := make([]Quarter, len(QuarterLabels))
	for i, label := range QuarterLabels {
		quarters[i].Quarter = label
	}

	for _, total := range totals {
		if total.MonthIndex < 0 || total.MonthIndex >= ProjectionMonths {
			continue
		}
		quarters[QuarterOf(total.MonthIndex)].Revenue += total.Revenue
	}

	previousRevenue := 0.0
	for i := range quarters {
		if i > 0 && previousRevenue > 0 {
			growth := (quarters[i].Revenue - previousRevenue) / previousRevenue * 100
			quarters[i].GrowthRate = growth
			quarters[i].Growth = utils.RoundToDecimalPlaces(growth, 1)
		}
		previousRevenue = quarters[i].Revenue
	}

	return quarters
}
