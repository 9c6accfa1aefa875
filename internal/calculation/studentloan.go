package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// StudentLoanCalculator models Plan 2 repayment: 9% of income over the
// threshold, interest accruing at RPI plus a margin (capped), and
// forgiveness of the remaining balance a fixed number of years after
// graduation.
type StudentLoanCalculator struct {
	rules     domain.FiscalRules
	inflation *InflationProjector
}

// NewStudentLoanCalculator builds a calculator sharing the engine's
// inflation projector.
func NewStudentLoanCalculator(rules domain.FiscalRules, inflation *InflationProjector) *StudentLoanCalculator {
	return &StudentLoanCalculator{rules: rules, inflation: inflation}
}

// AnnualRepayment is the repayment due on gross income against a given
// threshold, ignoring the remaining balance. The threshold-freeze impact
// compares this under baseline and reform thresholds.
func (sc *StudentLoanCalculator) AnnualRepayment(gross, threshold decimal.Decimal) decimal.Decimal {
	if gross.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	return gross.Sub(threshold).Mul(sc.rules.StudentLoanRate)
}

// InterestRate is the annual accrual rate for a calendar year:
// min(RPI + margin, cap).
func (sc *StudentLoanCalculator) InterestRate(year int) decimal.Decimal {
	rate := sc.inflation.RPI(year).Add(sc.rules.StudentLoanInterestMargin)
	return decimal.Min(rate, sc.rules.StudentLoanInterestCap)
}

// Step advances the loan by one year: repayment out of the current
// balance, then interest on what remains. Returns the payment made and
// the new balance. The balance is written off once the forgiveness
// horizon is reached.
func (sc *StudentLoanCalculator) Step(gross, balance decimal.Decimal, year, yearsSinceGraduation int) (payment, newBalance decimal.Decimal) {
	if yearsSinceGraduation >= sc.rules.StudentLoanForgivenessYears {
		return decimal.Zero, decimal.Zero
	}
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}

	interestFactor := decimal.NewFromInt(1).Add(sc.InterestRate(year))

	payment = sc.AnnualRepayment(gross, sc.rules.StudentLoanThreshold)
	payment = decimal.Min(payment, balance)

	newBalance = balance.Sub(payment).Mul(interestFactor)
	return payment, decimal.Max(decimal.Zero, newBalance)
}
