package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate_ReferenceProperty(t *testing.T) {
	in := Inputs{Price: 650000, SquareFeet: 1400, RepairCost: 75000, TargetRent: 3200}

	got, err := Estimate(in)
	require.NoError(t, err)

	assert.Equal(t, 650000.0, got.MarketAnalysis.CurrentValue)
	assert.Equal(t, 464.0, got.MarketAnalysis.PricePerSqFt)
	assert.Equal(t, 617500.0, got.MarketAnalysis.ComparableRange.Low)
	assert.Equal(t, 682500.0, got.MarketAnalysis.ComparableRange.High)

	assert.Equal(t, 744500.0, got.FixAndFlip.TotalCosts)
	assert.Equal(t, 161750.0, got.FixAndFlip.PotentialProfit)
	assert.Equal(t, 4.0, got.FixAndFlip.TimelineMonths)
	// 161750 / 744500 = 21.726%
	assert.Equal(t, 21.73, got.FixAndFlip.ROI)

	assert.Equal(t, 3200.0, got.RentalStrategy.MonthlyIncome)
	assert.Equal(t, 1280.0, got.RentalStrategy.OperatingExpenses)
	assert.Equal(t, 23040.0, got.RentalStrategy.NetOperatingIncome)
	// 23040 / 650000 = 3.5446%
	assert.Equal(t, 3.54, got.RentalStrategy.CapRate)
	assert.Equal(t, 14.18, got.RentalStrategy.CashOnCashReturn)

	assert.Len(t, got.PropertyInsights.Strengths, 3)
	assert.Len(t, got.PropertyInsights.Considerations, 3)
	assert.NotEmpty(t, got.PropertyInsights.Recommendation)
	assert.Nil(t, got.MarketTrends.Labels)
}

func TestEstimate_IsDeterministic(t *testing.T) {
	in := Inputs{Price: 315000, SquareFeet: 1875, RepairCost: 22000, TargetRent: 2150}

	first, err := Estimate(in)
	require.NoError(t, err)
	second, err := Estimate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEstimate_ComparableRangeBracketsValue(t *testing.T) {
	for _, price := range []float64{1, 99999, 250000, 1234567} {
		got, err := Estimate(Inputs{Price: price, SquareFeet: 1000, RepairCost: 1, TargetRent: 1})
		require.NoError(t, err)

		r := got.MarketAnalysis.ComparableRange
		assert.LessOrEqual(t, r.Low, got.MarketAnalysis.CurrentValue, "price %v", price)
		assert.GreaterOrEqual(t, r.High, got.MarketAnalysis.CurrentValue, "price %v", price)
	}
}

func TestEstimate_InsightsAreCopies(t *testing.T) {
	first, err := Estimate(Inputs{Price: 100000, SquareFeet: 900, RepairCost: 5000, TargetRent: 900})
	require.NoError(t, err)
	first.PropertyInsights.Strengths[0] = "mutated"

	second, err := Estimate(Inputs{Price: 100000, SquareFeet: 900, RepairCost: 5000, TargetRent: 900})
	require.NoError(t, err)
	assert.Equal(t, "Property available below market value", second.PropertyInsights.Strengths[0])
}

func TestEstimate_DivisionByZero(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
	}{
		{name: "zero price", in: Inputs{Price: 0, SquareFeet: 1000, RepairCost: 1000, TargetRent: 1000}},
		{name: "zero square feet", in: Inputs{Price: 100000, SquareFeet: 0, RepairCost: 1000, TargetRent: 1000}},
		{name: "costs cancel out", in: Inputs{Price: 100000, SquareFeet: 1000, RepairCost: -103000, TargetRent: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Estimate(tt.in)
			assert.ErrorIs(t, err, ErrDivisionByZero)
			assert.Nil(t, got)
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.0, Round(2.5))
	assert.Equal(t, -2.0, Round(-2.5))
	assert.Equal(t, 464.0, Round(464.2857))
	assert.Equal(t, 21.73, RoundPercent(21.7259))
	assert.Equal(t, 14.18, RoundPercent(14.1785))
}
