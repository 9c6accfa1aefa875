package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukfiscal/lifetax/internal/domain"
)

func runSimulation(t *testing.T, reforms []string) *domain.SimulationResult {
	t.Helper()
	engine := NewEngine()
	result, err := engine.Run(&domain.SimulationRequest{
		Profile: testProfile(),
		Reforms: reforms,
	})
	require.NoError(t, err)
	return result
}

func TestReformIndependence(t *testing.T) {
	full := runSimulation(t, nil)
	reforms := domain.AllReforms()

	for _, disabled := range reforms {
		var keep []string
		for _, r := range reforms {
			if r.Key != disabled.Key {
				keep = append(keep, string(r.Key))
			}
		}
		partial := runSimulation(t, keep)

		require.Len(t, partial.Rows, len(full.Rows))
		for i := range full.Rows {
			assert.True(t, partial.Rows[i].ImpactSet.Get(disabled.Key).IsZero(),
				"disabled %s must be zero in year %d", disabled.Key, full.Rows[i].Year)
			for _, other := range reforms {
				if other.Key == disabled.Key {
					continue
				}
				assert.True(t,
					partial.Rows[i].ImpactSet.Get(other.Key).Equal(full.Rows[i].ImpactSet.Get(other.Key)),
					"disabling %s must not move %s in year %d", disabled.Key, other.Key, full.Rows[i].Year)
			}
		}
	}
}

func TestImpactSigns(t *testing.T) {
	result := runSimulation(t, nil)

	for _, row := range result.Rows {
		// Spending-side freezes shield the individual: never negative.
		assert.True(t, row.RailFareFreeze.GreaterThanOrEqual(decimal.Zero),
			"rail freeze cannot cost money, year %d", row.Year)
		assert.True(t, row.FuelDutyFreeze.GreaterThanOrEqual(decimal.Zero),
			"fuel freeze cannot cost money, year %d", row.Year)

		// Revenue-raising reforms cost the individual: never positive.
		assert.True(t, row.ThresholdFreeze.LessThanOrEqual(decimal.Zero),
			"threshold freeze cannot pay out, year %d", row.Year)
		assert.True(t, row.UnearnedIncomeTax.LessThanOrEqual(decimal.Zero),
			"unearned surcharge cannot pay out, year %d", row.Year)
		assert.True(t, row.SalarySacrificeCap.LessThanOrEqual(decimal.Zero),
			"sacrifice cap cannot pay out, year %d", row.Year)
		assert.True(t, row.SLThresholdFreeze.LessThanOrEqual(decimal.Zero),
			"student loan freeze cannot pay out, year %d", row.Year)
	}
}

func TestRailFareFreeze_StartsAtCapYear(t *testing.T) {
	result := runSimulation(t, nil)

	for _, row := range result.Rows {
		if row.Year < 2026 {
			assert.True(t, row.RailFareFreeze.IsZero(), "no rail saving before the cap, year %d", row.Year)
		} else {
			// 2000 rail spend x 4.16% RPI(2025).
			assert.Equal(t, "83.20", row.RailFareFreeze.StringFixed(2), "year %d", row.Year)
		}
	}
}

func TestFuelDutyFreeze_PhasedAmounts(t *testing.T) {
	result := runSimulation(t, nil)
	byYear := make(map[int]domain.YearRow)
	for _, row := range result.Rows {
		byYear[row.Year] = row
	}

	// 1500 petrol spend at 1.40/litre = 1071.43 litres.
	assert.Equal(t, "54.11", byYear[2025].FuelDutyFreeze.StringFixed(2), "full 5p-plus gap while frozen")
	assert.Equal(t, "38.89", byYear[2026].FuelDutyFreeze.StringFixed(2), "phase-year weighted average")
	assert.Equal(t, "0.54", byYear[2030].FuelDutyFreeze.StringFixed(2), "residual 0.05p gap at the full rate")
}

func TestThresholdFreeze_ZeroWhileBothFrozen(t *testing.T) {
	result := runSimulation(t, nil)

	for _, row := range result.Rows {
		if row.Year <= 2028 {
			assert.True(t, row.ThresholdFreeze.IsZero(),
				"no gap while baseline and reform are both frozen, year %d", row.Year)
		}
	}
}

func TestThresholdFreeze_BindsOnceBaselineIndexes(t *testing.T) {
	result := runSimulation(t, nil)

	var bound bool
	for _, row := range result.Rows {
		if row.Year >= 2029 && row.Year <= 2030 && row.GrossIncome.GreaterThan(decimal.Zero) {
			if row.ThresholdFreeze.LessThan(decimal.Zero) {
				bound = true
			}
		}
	}
	assert.True(t, bound, "a working-age earner must pay more under the extended freeze")
}

func TestSalarySacrificeCap_ZeroInRetirement(t *testing.T) {
	result := runSimulation(t, nil)

	for _, row := range result.Rows {
		switch {
		case row.Age > 67:
			assert.True(t, row.SalarySacrificeCap.IsZero(), "no sacrifice in retirement, year %d", row.Year)
		case row.Age <= 33:
			// 3000 over the cap x (8% employee + 15% employer).
			assert.Equal(t, "-690.00", row.SalarySacrificeCap.StringFixed(2), "year %d", row.Year)
		default:
			// Earnings cross the upper limit at 34; marginal employee rate drops to 2%.
			assert.Equal(t, "-510.00", row.SalarySacrificeCap.StringFixed(2), "year %d", row.Year)
		}
	}
}

func TestSLThresholdFreeze_ZeroOnceLoanCleared(t *testing.T) {
	result := runSimulation(t, nil)

	for i := 1; i < len(result.Rows); i++ {
		if result.Rows[i-1].StudentLoanDebt.IsZero() && result.Rows[i-1].StudentLoanPayment.IsZero() {
			assert.True(t, result.Rows[i].SLThresholdFreeze.IsZero(),
				"no repayment delta without a balance, year %d", result.Rows[i].Year)
		}
	}
}
