package domain

import "time"

// ProjectionSnapshot é o resumo persistido periodicamente pelo agendador.
type ProjectionSnapshot struct {
	ID                     string    `json:"id"`
	TakenAt                time.Time `json:"takenAt"`
	BrandCount             int       `json:"brandCount"`
	TotalRevenue           float64   `json:"totalRevenue"`
	TotalRecurringRevenue  float64   `json:"totalRecurringRevenue"`
	TotalLaunchPlanRevenue float64   `json:"totalLaunchPlanRevenue"`
	LaunchPlanCommission   float64   `json:"launchPlanCommission"`
	CommissionRate         float64   `json:"commissionRate"`
	OngoingCommission      float64   `json:"ongoingCommission"`
	AverageMonthlyRevenue  float64   `json:"averageMonthlyRevenue"`
	PeakMonth              string    `json:"peakMonth"`
	PeakMonthRevenue       float64   `json:"peakMonthRevenue"`
}
