// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/vfg2006/brand-projection-api/pkg/revenue"
)

// Brand é o registro persistido de uma marca da carteira.
type Brand struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	StartingSales     float64   `json:"startingSales"`
	MonthlyGrowthRate float64   `json:"monthlyGrowthRate"`
	StartingMonth     int       `json:"startingMonth"`
	HasLaunchPlan     bool      `json:"hasLaunchPlan"`
	LaunchPlanFee     float64   `json:"launchPlanFee"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BrandInput é o corpo de criação/edição depois da coerção numérica. Campos
// nil não foram enviados. StartingMonth chega como float para que valores
// fracionados sejam rejeitados na validação em vez de truncados.
type BrandInput struct {
	Name              *string  `mapstructure:"name"`
	Category          *string  `mapstructure:"category"`
	StartingSales     *float64 `mapstructure:"startingSales"`
	MonthlyGrowthRate *float64 `mapstructure:"monthlyGrowthRate"`
	StartingMonth     *float64 `mapstructure:"startingMonth"`
	HasLaunchPlan     *bool    `mapstructure:"hasLaunchPlan"`
	LaunchPlanFee     *float64 `mapstructure:"launchPlanFee"`
}

type BrandListResponse struct {
	Success bool     `json:"success"`
	Brands  []*Brand `json:"brands"`
}

type BrandResponse struct {
	Success bool   `json:"success"`
	Brand   *Brand `json:"brand"`
}

// ToRevenue converte o registro na entrada do motor de projeção.
func (b *Brand) ToRevenue() revenue.Brand {
	return revenue.Brand{
		ID:                b.ID,
		Name:              b.Name,
		Category:          b.Category,
		StartingSales:     b.StartingSales,
		MonthlyGrowthRate: b.MonthlyGrowthRate,
		StartingMonth:     b.StartingMonth,
		HasLaunchPlan:     b.HasLaunchPlan,
		LaunchPlanFee:     b.LaunchPlanFee,
	}
}

// ToRevenueBrands monta o snapshot imutável passado ao motor.
func ToRevenueBrands(brands []*Brand) []revenue.Brand {
	snapshot := make([]revenue.Brand, 0, len(brands))
	for _, brand := range brands {
		if brand == nil {
			continue
		}
		snapshot = append(snapshot, brand.ToRevenue())
	}
	return snapshot
}

// DefaultBrands é a carteira inicial usada no primeiro acesso e no reset.
func DefaultBrands() []*Brand {
	return []*Brand{
		{Name: "Crush", Category: "Premium Food", StartingSales: 60000, MonthlyGrowthRate: 15.5},
		{Name: "Milaf", Category: "Traditional Goods", StartingSales: 10000, MonthlyGrowthRate: 8.2},
		{Name: "Bab Sharqi", Category: "Traditional Goods", StartingSales: 10000, MonthlyGrowthRate: 3.1},
		{Name: "Nuricle", Category: "Health & Beauty", StartingSales: 10000, MonthlyGrowthRate: 6.8},
		{Name: "Reeq Al Nahl", Category: "Premium Food", StartingSales: 5000, MonthlyGrowthRate: 12.3},
		{Name: "Leen Dates", Category: "Premium Food", StartingSales: 20000, MonthlyGrowthRate: 5.5},
	}
}
