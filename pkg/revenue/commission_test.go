package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOngoingCommission(t *testing.T) {
	assert.Equal(t, 500.0, OngoingCommission(10000, 5))
	assert.Zero(t, OngoingCommission(10000, 0))
	assert.Zero(t, OngoingCommission(0, 5))
}

func TestCommissionSummary(t *testing.T) {
	brands := defaultPortfolio()
	totals := Aggregate(brands).MonthlyTotals
	metrics := KeyMetrics(totals, brands)

	summary := CommissionSummary(totals, metrics, DefaultCommissionRate)

	assert.Equal(t, DefaultCommissionRate, summary.Rate)
	assert.InDelta(t, metrics.TotalRecurringRevenue*0.05, summary.TotalCommission, tolerance)
	assert.InDelta(t, summary.TotalCommission/12, summary.AverageMonthlyCommission, tolerance)
	assert.Equal(t, metrics.ZidLaunchPlanCommission, summary.LaunchPlanCommission)

	require.Len(t, summary.Monthly, ProjectionMonths)
	seriesSum := 0.0
	for _, month := range summary.Monthly {
		seriesSum += month.Commission
	}
	assert.InDelta(t, summary.TotalCommission, seriesSum, 1e-6)
	assert.Equal(t, "Sep 2026", summary.PeakCommissionMonth)
}

func TestCommissionSummary_LaunchFeesAreNotCommissionedTwice(t *testing.T) {
	brands := []Brand{{Name: "a", StartingSales: 1000, StartingMonth: 0, HasLaunchPlan: true, LaunchPlanFee: 100000}}
	totals := Aggregate(brands).MonthlyTotals

	summary := CommissionSummary(totals, KeyMetrics(totals, brands), 10)

	assert.InDelta(t, 1200.0, summary.TotalCommission, tolerance)
	assert.InDelta(t, 100.0, summary.Monthly[0].Commission, tolerance)
	assert.Equal(t, 30000.0, summary.LaunchPlanCommission)
}

func TestCommissionSummary_Empty(t *testing.T) {
	totals := Aggregate(nil).MonthlyTotals

	summary := CommissionSummary(totals, KeyMetrics(totals, nil), 5)

	assert.Zero(t, summary.TotalCommission)
	assert.Zero(t, summary.PeakCommission)
	assert.Equal(t, "N/A", summary.PeakCommissionMonth)
	assert.Equal(t, KeyMetrics(totals, nil).PeakMonth, summary.PeakCommissionMonth)
	assert.Len(t, summary.Monthly, ProjectionMonths)
}

func TestContributions(t *testing.T) {
	brands := []Brand{
		{ID: "1", Name: "a", StartingSales: 100},
		{ID: "2", Name: "b", StartingSales: 300},
	}

	contributions := Contributions(brands)

	require.Len(t, contributions, 2)
	assert.Equal(t, 1200.0, contributions[0].TotalRevenue)
	assert.InDelta(t, 25.0, contributions[0].ContributionPercentage, tolerance)
	assert.InDelta(t, 75.0, contributions[1].ContributionPercentage, tolerance)
}

func TestContributions_ZeroGrandTotal(t *testing.T) {
	contributions := Contributions([]Brand{{ID: "1", Name: "zero"}})

	require.Len(t, contributions, 1)
	assert.Zero(t, contributions[0].ContributionPercentage)
	assert.Empty(t, Contributions(nil))
}
