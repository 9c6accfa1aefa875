package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// NICalculator computes employee Class 1 National Insurance: the main
// rate between the primary threshold and the upper earnings limit, the
// upper rate above it.
type NICalculator struct {
	PrimaryThreshold   decimal.Decimal
	UpperEarningsLimit decimal.Decimal
	MainRate           decimal.Decimal
	UpperRate          decimal.Decimal
	EmployerRate       decimal.Decimal
}

// NewNICalculator builds a calculator from the rule set's NI parameters.
func NewNICalculator(rules domain.FiscalRules) *NICalculator {
	return &NICalculator{
		PrimaryThreshold:   rules.NIPrimaryThreshold,
		UpperEarningsLimit: rules.NIUpperEarningsLimit,
		MainRate:           rules.NIMainRate,
		UpperRate:          rules.NIUpperRate,
		EmployerRate:       rules.EmployerNIRate,
	}
}

// Contributions returns the annual employee NI charge on gross earnings.
func (nc *NICalculator) Contributions(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(nc.PrimaryThreshold) {
		return decimal.Zero
	}
	mainBand := decimal.Min(gross.Sub(nc.PrimaryThreshold), nc.UpperEarningsLimit.Sub(nc.PrimaryThreshold))
	ni := mainBand.Mul(nc.MainRate)
	if gross.GreaterThan(nc.UpperEarningsLimit) {
		ni = ni.Add(gross.Sub(nc.UpperEarningsLimit).Mul(nc.UpperRate))
	}
	return ni
}

// MarginalEmployeeRate is the employee rate charged on the next pound of
// earnings, used to price NICs on capped salary sacrifice.
func (nc *NICalculator) MarginalEmployeeRate(gross decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(nc.UpperEarningsLimit) {
		return nc.MainRate
	}
	return nc.UpperRate
}
