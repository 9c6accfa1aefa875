package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// TaxBandCalculator computes income tax liability under a given parameter
// set: personal allowance taper first, then the banded split. It is the
// single implementation of this arithmetic; the threshold-freeze impact
// and any presentation-layer breakdown call into it rather than
// re-deriving the formulas.
type TaxBandCalculator struct {
	BasicRate      decimal.Decimal
	HigherRate     decimal.Decimal
	AdditionalRate decimal.Decimal
	TaperRate      decimal.Decimal
}

// NewTaxBandCalculator builds a calculator from the rule set's rates.
func NewTaxBandCalculator(rules domain.FiscalRules) *TaxBandCalculator {
	return &TaxBandCalculator{
		BasicRate:      rules.BasicRate,
		HigherRate:     rules.HigherRate,
		AdditionalRate: rules.AdditionalRate,
		TaperRate:      rules.TaperRate,
	}
}

// TaxBandBreakdown is the full banded split for one income under one
// parameter set.
type TaxBandBreakdown struct {
	EffectivePA    decimal.Decimal `json:"effective_pa"`
	TaxFree        decimal.Decimal `json:"tax_free"`
	BasicBand      decimal.Decimal `json:"basic_band"`
	HigherBand     decimal.Decimal `json:"higher_band"`
	AdditionalBand decimal.Decimal `json:"additional_band"`
	Tax            decimal.Decimal `json:"tax"`
}

// Liability splits income across the bands defined by a parameter set and
// prices the liability.
//
// The taper withdraws the allowance at TaperRate per pound over the taper
// threshold. Band widths are fixed by the nominal allowance, not the
// tapered one: the statutory band boundaries do not move when the
// allowance is withdrawn.
func (tc *TaxBandCalculator) Liability(income, pa, taperThreshold, basicThreshold, additionalThreshold decimal.Decimal) TaxBandBreakdown {
	effectivePA := pa
	if income.GreaterThan(taperThreshold) {
		reduction := decimal.Min(pa, income.Sub(taperThreshold).Mul(tc.TaperRate))
		effectivePA = decimal.Max(decimal.Zero, pa.Sub(reduction))
	}

	taxFree := decimal.Min(income, effectivePA)
	remaining := income.Sub(taxFree)

	basicBand := decimal.Max(decimal.Zero, decimal.Min(remaining, basicThreshold.Sub(pa)))
	remaining = remaining.Sub(basicBand)

	higherBand := decimal.Max(decimal.Zero, decimal.Min(remaining, additionalThreshold.Sub(basicThreshold)))
	remaining = remaining.Sub(higherBand)

	additionalBand := decimal.Max(decimal.Zero, remaining)

	tax := basicBand.Mul(tc.BasicRate).
		Add(higherBand.Mul(tc.HigherRate)).
		Add(additionalBand.Mul(tc.AdditionalRate))

	return TaxBandBreakdown{
		EffectivePA:    effectivePA,
		TaxFree:        taxFree,
		BasicBand:      basicBand,
		HigherBand:     higherBand,
		AdditionalBand: additionalBand,
		Tax:            tax,
	}
}

// LiabilityUnder prices income under an evaluated parameter set.
func (tc *TaxBandCalculator) LiabilityUnder(income decimal.Decimal, params domain.PolicyParameterSet) TaxBandBreakdown {
	return tc.Liability(income, params.PersonalAllowance, params.TaperThreshold,
		params.BasicRateThreshold, params.AdditionalRateThreshold)
}
