package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// UnearnedIncomeCalculator prices dividend, savings-interest and property
// income. The earner's band (basic vs higher, judged on gross earned
// income against the statutory basic-rate threshold) selects the savings
// allowance and the dividend rate; property income is charged at the
// earner's marginal band rate with no allowance.
type UnearnedIncomeCalculator struct {
	rules domain.FiscalRules
}

// NewUnearnedIncomeCalculator builds a calculator from the rule set.
func NewUnearnedIncomeCalculator(rules domain.FiscalRules) *UnearnedIncomeCalculator {
	return &UnearnedIncomeCalculator{rules: rules}
}

// Tax returns the annual charge on the profile's unearned income. With
// surcharged set, the reform's percentage uplift is applied to the whole
// charge.
func (uc *UnearnedIncomeCalculator) Tax(dividends, savingsInterest, propertyIncome, grossIncome decimal.Decimal, surcharged bool) decimal.Decimal {
	var savingsAllowance, dividendRate, bandRate decimal.Decimal
	if grossIncome.GreaterThan(uc.rules.BasicRateThreshold) {
		savingsAllowance = uc.rules.SavingsAllowanceHigher
		dividendRate = uc.rules.DividendRateHigher
		bandRate = uc.rules.HigherRate
	} else {
		savingsAllowance = uc.rules.SavingsAllowanceBasic
		dividendRate = uc.rules.DividendRateBasic
		bandRate = uc.rules.BasicRate
	}

	taxableDividends := decimal.Max(decimal.Zero, dividends.Sub(uc.rules.DividendAllowance))
	taxableSavings := decimal.Max(decimal.Zero, savingsInterest.Sub(savingsAllowance))

	tax := taxableDividends.Mul(dividendRate).
		Add(taxableSavings.Mul(bandRate)).
		Add(propertyIncome.Mul(bandRate))

	if surcharged {
		tax = tax.Mul(decimal.NewFromInt(1).Add(uc.rules.UnearnedSurcharge))
	}
	return tax
}
