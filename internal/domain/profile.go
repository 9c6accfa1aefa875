package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxpayerProfile describes the synthetic individual a simulation runs
// over. It is immutable for the duration of a request.
type TaxpayerProfile struct {
	CurrentAge      int             `yaml:"current_age" json:"current_age"`
	CurrentSalary   decimal.Decimal `yaml:"current_salary" json:"current_salary"`
	RetirementAge   int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy  int             `yaml:"life_expectancy" json:"life_expectancy"`
	StudentLoanDebt decimal.Decimal `yaml:"student_loan_debt" json:"student_loan_debt"`

	// Annual spending and unearned income, flat nominal amounts.
	SalarySacrificePerYear decimal.Decimal `yaml:"salary_sacrifice_per_year" json:"salary_sacrifice_per_year"`
	RailSpendingPerYear    decimal.Decimal `yaml:"rail_spending_per_year" json:"rail_spending_per_year"`
	PetrolSpendingPerYear  decimal.Decimal `yaml:"petrol_spending_per_year" json:"petrol_spending_per_year"`
	DividendsPerYear       decimal.Decimal `yaml:"dividends_per_year" json:"dividends_per_year"`
	SavingsInterestPerYear decimal.Decimal `yaml:"savings_interest_per_year" json:"savings_interest_per_year"`
	PropertyIncomePerYear  decimal.Decimal `yaml:"property_income_per_year" json:"property_income_per_year"`

	// Real salary growth on top of the age-earnings curve.
	AdditionalIncomeGrowthRate decimal.Decimal `yaml:"additional_income_growth_rate" json:"additional_income_growth_rate"`
}

// Validate checks the profile invariants. A profile that fails validation
// is rejected before any simulation work starts.
func (p *TaxpayerProfile) Validate() error {
	if p.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive, got %d", p.CurrentAge)
	}
	if p.CurrentAge >= p.RetirementAge {
		return fmt.Errorf("current age (%d) must be before retirement age (%d)", p.CurrentAge, p.RetirementAge)
	}
	if p.RetirementAge >= p.LifeExpectancy {
		return fmt.Errorf("retirement age (%d) must be before life expectancy (%d)", p.RetirementAge, p.LifeExpectancy)
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"current_salary", p.CurrentSalary},
		{"student_loan_debt", p.StudentLoanDebt},
		{"salary_sacrifice_per_year", p.SalarySacrificePerYear},
		{"rail_spending_per_year", p.RailSpendingPerYear},
		{"petrol_spending_per_year", p.PetrolSpendingPerYear},
		{"dividends_per_year", p.DividendsPerYear},
		{"savings_interest_per_year", p.SavingsInterestPerYear},
		{"property_income_per_year", p.PropertyIncomePerYear},
	} {
		if f.value.LessThan(decimal.Zero) {
			return fmt.Errorf("%s cannot be negative, got %s", f.name, f.value)
		}
	}
	if p.AdditionalIncomeGrowthRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("additional income growth rate cannot be less than -10%%, got %s", p.AdditionalIncomeGrowthRate)
	}
	return nil
}

// SimulationRequest is the full input to one engine run: the profile, the
// reforms to evaluate (all of them when empty) and the display mode for
// the lifetime total.
type SimulationRequest struct {
	Profile   TaxpayerProfile `yaml:"profile" json:"profile"`
	Reforms   []string        `yaml:"reforms,omitempty" json:"reforms,omitempty"`
	RealTerms bool            `yaml:"real_terms" json:"real_terms"`
}
