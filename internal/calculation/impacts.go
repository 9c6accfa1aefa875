package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// YearContext carries everything one year's impact evaluation may read.
type YearContext struct {
	Age                  int
	Year                 int
	GrossIncome          decimal.Decimal
	Retired              bool
	StudentLoanBalance   decimal.Decimal
	YearsSinceGraduation int
	Profile              *domain.TaxpayerProfile
}

// impactFunc computes one category's nominal delta for one year from that
// category's baseline/reform parameter pair and nothing else.
type impactFunc func(ric *ReformImpactCalculator, ctx YearContext, baseline, reform domain.PolicyParameterSet) decimal.Decimal

// impactRegistry dispatches each reform category to its evaluator.
// Categories are self-contained: disabling one fixes its delta at zero
// and cannot move any other category's value.
var impactRegistry = map[domain.ReformKey]impactFunc{
	domain.ReformRailFareFreeze:     (*ReformImpactCalculator).railFareFreeze,
	domain.ReformFuelDutyFreeze:     (*ReformImpactCalculator).fuelDutyFreeze,
	domain.ReformThresholdFreeze:    (*ReformImpactCalculator).thresholdFreeze,
	domain.ReformUnearnedIncomeTax:  (*ReformImpactCalculator).unearnedIncomeTax,
	domain.ReformSalarySacrificeCap: (*ReformImpactCalculator).salarySacrificeCap,
	domain.ReformSLThresholdFreeze:  (*ReformImpactCalculator).slThresholdFreeze,
}

// ReformImpactCalculator turns baseline/reform parameter pairs into
// signed per-year deltas.
//
// Sign convention, uniform across categories: positive means the
// individual is better off with the reform in effect than under the
// unfrozen baseline. Freezes that shield the individual from an
// inflation-linked rise (fuel duty, rail fares) come out positive;
// freezes and surcharges that raise their charges relative to the
// baseline (threshold freezes, the NIC cap, the unearned-income rise)
// come out negative.
type ReformImpactCalculator struct {
	rules       domain.FiscalRules
	taxCalc     *TaxBandCalculator
	niCalc      *NICalculator
	unearned    *UnearnedIncomeCalculator
	studentLoan *StudentLoanCalculator
}

// NewReformImpactCalculator wires the calculator to the engine's shared
// leaf calculators.
func NewReformImpactCalculator(rules domain.FiscalRules, taxCalc *TaxBandCalculator, niCalc *NICalculator, unearned *UnearnedIncomeCalculator, studentLoan *StudentLoanCalculator) *ReformImpactCalculator {
	return &ReformImpactCalculator{
		rules:       rules,
		taxCalc:     taxCalc,
		niCalc:      niCalc,
		unearned:    unearned,
		studentLoan: studentLoan,
	}
}

// Compute evaluates every enabled category for one year. Disabled
// categories stay at zero.
func (ric *ReformImpactCalculator) Compute(enabled domain.ReformSet, ctx YearContext, baseline, reform domain.PolicyParameterSet) domain.ImpactSet {
	var impacts domain.ImpactSet
	for key, fn := range impactRegistry {
		if !enabled.Enabled(key) {
			continue
		}
		impacts.Set(key, fn(ric, ctx, baseline, reform))
	}
	return impacts
}

// railFareFreeze: the avoided fare rise, rail spend times the gap between
// the baseline and capped fare indices.
func (ric *ReformImpactCalculator) railFareFreeze(ctx YearContext, baseline, reform domain.PolicyParameterSet) decimal.Decimal {
	return ctx.Profile.RailSpendingPerYear.Mul(baseline.RailFareIndex.Sub(reform.RailFareIndex))
}

// fuelDutyFreeze: duty avoided on the litres the petrol budget buys.
func (ric *ReformImpactCalculator) fuelDutyFreeze(ctx YearContext, baseline, reform domain.PolicyParameterSet) decimal.Decimal {
	litres := ctx.Profile.PetrolSpendingPerYear.Div(ric.rules.PetrolPricePerLitre)
	return baseline.FuelDutyRate.Sub(reform.FuelDutyRate).Mul(litres)
}

// thresholdFreeze: the same income priced under both parameter sets;
// impact is baseline tax minus reform tax.
func (ric *ReformImpactCalculator) thresholdFreeze(ctx YearContext, baseline, reform domain.PolicyParameterSet) decimal.Decimal {
	baselineTax := ric.taxCalc.LiabilityUnder(ctx.GrossIncome, baseline).Tax
	reformTax := ric.taxCalc.LiabilityUnder(ctx.GrossIncome, reform).Tax
	return baselineTax.Sub(reformTax)
}

// unearnedIncomeTax: the extra charge from the surcharge, sign-inverted.
func (ric *ReformImpactCalculator) unearnedIncomeTax(ctx YearContext, _, _ domain.PolicyParameterSet) decimal.Decimal {
	p := ctx.Profile
	base := ric.unearned.Tax(p.DividendsPerYear, p.SavingsInterestPerYear, p.PropertyIncomePerYear, ctx.GrossIncome, false)
	surcharged := ric.unearned.Tax(p.DividendsPerYear, p.SavingsInterestPerYear, p.PropertyIncomePerYear, ctx.GrossIncome, true)
	return surcharged.Sub(base).Neg()
}

// salarySacrificeCap: employee plus employer NICs charged on sacrifice
// over the cap, sign-inverted. No sacrifice once retired.
func (ric *ReformImpactCalculator) salarySacrificeCap(ctx YearContext, _, _ domain.PolicyParameterSet) decimal.Decimal {
	if ctx.Retired {
		return decimal.Zero
	}
	excess := decimal.Max(decimal.Zero, ctx.Profile.SalarySacrificePerYear.Sub(ric.rules.SalarySacrificeCap))
	if excess.IsZero() {
		return decimal.Zero
	}
	rate := ric.niCalc.MarginalEmployeeRate(ctx.GrossIncome).Add(ric.niCalc.EmployerRate)
	return excess.Mul(rate).Neg()
}

// slThresholdFreeze: repayment due under the baseline threshold minus
// repayment due under the frozen one. Zero once the loan is cleared or
// forgiven.
func (ric *ReformImpactCalculator) slThresholdFreeze(ctx YearContext, baseline, reform domain.PolicyParameterSet) decimal.Decimal {
	if ctx.StudentLoanBalance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	baselineRepay := ric.studentLoan.AnnualRepayment(ctx.GrossIncome, baseline.StudentLoanThreshold)
	reformRepay := ric.studentLoan.AnnualRepayment(ctx.GrossIncome, reform.StudentLoanThreshold)
	return baselineRepay.Sub(reformRepay)
}
