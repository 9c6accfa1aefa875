package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ukfiscal/lifetax/internal/domain"
)

func TestCumulativeInflation_ReferenceYearAndEarlier(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())

	one := decimal.NewFromInt(1)
	for _, year := range []int{2020, 2024, 2025} {
		assert.True(t, ip.CumulativeInflation(year).Equal(one),
			"factor must be exactly 1.0 at or before the reference year, year %d", year)
	}
}

func TestCumulativeInflation_StrictlyIncreasing(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())

	prev := ip.CumulativeInflation(2025)
	for year := 2026; year <= 2080; year++ {
		factor := ip.CumulativeInflation(year)
		assert.True(t, factor.GreaterThan(prev), "factor must strictly increase, year %d", year)
		prev = factor
	}
}

func TestCumulativeInflation_ForecastThenLongRun(t *testing.T) {
	// 2025 -> 2027 compounds the 2026 forecast (1.93%) with the 2027
	// forecast (2.00%): 1.0193 * 1.02.
	ip := NewInflationProjector(domain.DefaultFiscalRules())

	factor := ip.CumulativeInflation(2027)
	expected := decimal.NewFromFloat(1.0193).Mul(decimal.NewFromFloat(1.02))
	assert.True(t, factor.Sub(expected).Abs().LessThan(decimal.NewFromFloat(1e-9)),
		"expected %s, got %s", expected, factor)
}

func TestRateLookup_FallsBackToLongRun(t *testing.T) {
	rules := domain.DefaultFiscalRules()
	ip := NewInflationProjector(rules)

	assert.True(t, ip.CPI(2026).Equal(decimal.NewFromFloat(0.0193)), "forecast year uses the table")
	assert.True(t, ip.CPI(2055).Equal(rules.CPILongRun), "post-forecast year uses the long-run rate")
	assert.True(t, ip.RPI(2026).Equal(decimal.NewFromFloat(0.0308)), "RPI forecast year uses the table")
	assert.True(t, ip.RPI(2055).Equal(rules.RPILongRun), "RPI post-forecast year uses the long-run rate")
}

func TestDeflate_RoundTripsWithCumulativeInflation(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())

	nominal := decimal.NewFromFloat(1234.56)
	for _, year := range []int{2025, 2030, 2050, 2090} {
		real := ip.Deflate(nominal, year)
		back := real.Mul(ip.CumulativeInflation(year))
		assert.True(t, back.Sub(nominal).Abs().LessThan(decimal.NewFromFloat(1e-6)),
			"real * factor must reproduce nominal, year %d", year)
	}
}

func TestCumulativeCPI_EmptySpanIsOne(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())

	assert.True(t, ip.CumulativeCPI(2030, 2030).Equal(decimal.NewFromInt(1)), "same-year span")
	assert.True(t, ip.CumulativeCPI(2030, 2028).Equal(decimal.NewFromInt(1)), "inverted span")
}
