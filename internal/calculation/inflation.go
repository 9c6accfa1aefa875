package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// InflationProjector converts calendar years into cumulative inflation
// factors. It is the single authoritative implementation of that
// conversion: the parameter model, the impact calculator, the aggregator
// and every presentation layer deflate through it rather than restating
// the arithmetic.
type InflationProjector struct {
	referenceYear int
	cpiForecasts  map[int]decimal.Decimal
	cpiLongRun    decimal.Decimal
	rpiForecasts  map[int]decimal.Decimal
	rpiLongRun    decimal.Decimal
}

// NewInflationProjector builds a projector from the rule set's forecast
// tables.
func NewInflationProjector(rules domain.FiscalRules) *InflationProjector {
	return &InflationProjector{
		referenceYear: rules.ReferenceYear,
		cpiForecasts:  rules.CPIForecasts,
		cpiLongRun:    rules.CPILongRun,
		rpiForecasts:  rules.RPIForecasts,
		rpiLongRun:    rules.RPILongRun,
	}
}

// CPI returns the CPI rate for a year: the forecast table entry when one
// exists, the long-run rate otherwise.
func (ip *InflationProjector) CPI(year int) decimal.Decimal {
	if rate, ok := ip.cpiForecasts[year]; ok {
		return rate
	}
	return ip.cpiLongRun
}

// RPI returns the RPI rate for a year, falling back to the long-run rate.
func (ip *InflationProjector) RPI(year int) decimal.Decimal {
	if rate, ok := ip.rpiForecasts[year]; ok {
		return rate
	}
	return ip.rpiLongRun
}

// CumulativeCPI compounds CPI from fromYear to targetYear: the product of
// (1 + rate) over the years after fromYear up to and including
// targetYear. Returns 1.0 when targetYear <= fromYear.
func (ip *InflationProjector) CumulativeCPI(fromYear, targetYear int) decimal.Decimal {
	return cumulate(fromYear, targetYear, ip.CPI)
}

// CumulativeRPI compounds RPI over the same span as CumulativeCPI.
func (ip *InflationProjector) CumulativeRPI(fromYear, targetYear int) decimal.Decimal {
	return cumulate(fromYear, targetYear, ip.RPI)
}

// CumulativeInflation is the deflator: the CPI factor from the reference
// year to targetYear. Always >= 1.0, exactly 1.0 for any year at or
// before the reference year, strictly increasing after it.
func (ip *InflationProjector) CumulativeInflation(targetYear int) decimal.Decimal {
	return ip.CumulativeCPI(ip.referenceYear, targetYear)
}

// Deflate converts a nominal amount in targetYear pounds to reference-year
// purchasing power. Every real-terms value in the system comes through
// this one division.
func (ip *InflationProjector) Deflate(nominal decimal.Decimal, targetYear int) decimal.Decimal {
	return nominal.Div(ip.CumulativeInflation(targetYear))
}

func cumulate(fromYear, targetYear int, rate func(int) decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	one := decimal.NewFromInt(1)
	for y := fromYear + 1; y <= targetYear; y++ {
		factor = factor.Mul(one.Add(rate(y)))
	}
	return factor
}
