package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// TrajectoryPoint is one year of the income path before any policy
// evaluation: just who the individual is that year and what they earn.
type TrajectoryPoint struct {
	Age                  int
	Year                 int
	GrossIncome          decimal.Decimal
	Retired              bool
	YearsSinceGraduation int
}

// TrajectoryGenerator produces the ordered per-year income path for a
// profile: one point per integer age from current age to life expectancy,
// with year = base year + (age - current age).
//
// Earnings follow the age-earnings multiplier curve, anchored so the
// profile's current salary is reproduced at its current age, with the
// profile's additional growth rate compounding on top. The curve plateaus
// at its peak; earned income is zero after retirement age. Spending
// categories are flat nominal amounts carried from the profile, matching
// how the corresponding reforms freeze them.
type TrajectoryGenerator struct {
	rules domain.FiscalRules
}

// NewTrajectoryGenerator builds a generator from the rule set.
func NewTrajectoryGenerator(rules domain.FiscalRules) *TrajectoryGenerator {
	return &TrajectoryGenerator{rules: rules}
}

// Generate returns the chronological income path for a profile. The
// profile must already be validated.
func (tg *TrajectoryGenerator) Generate(profile domain.TaxpayerProfile) []TrajectoryPoint {
	one := decimal.NewFromInt(1)
	growth := one.Add(profile.AdditionalIncomeGrowthRate)
	anchor := tg.multiplier(profile.CurrentAge)

	points := make([]TrajectoryPoint, 0, profile.LifeExpectancy-profile.CurrentAge+1)
	for age := profile.CurrentAge; age <= profile.LifeExpectancy; age++ {
		yearsOut := age - profile.CurrentAge
		point := TrajectoryPoint{
			Age:                  age,
			Year:                 tg.rules.BaseYear + yearsOut,
			Retired:              age > profile.RetirementAge,
			YearsSinceGraduation: age - tg.rules.GraduationAge,
		}
		if !point.Retired {
			curve := tg.multiplier(age).Div(anchor)
			point.GrossIncome = profile.CurrentSalary.Mul(curve).Mul(growth.Pow(decimal.NewFromInt(int64(yearsOut))))
		} else {
			point.GrossIncome = decimal.Zero
		}
		points = append(points, point)
	}
	return points
}

// multiplier looks up the age-earnings curve, clamping below the curve's
// start and plateauing at the peak above its end.
func (tg *TrajectoryGenerator) multiplier(age int) decimal.Decimal {
	if m, ok := tg.rules.EarningsCurve[age]; ok {
		return m
	}
	if age < tg.rules.GraduationAge {
		return decimal.NewFromInt(1)
	}
	return tg.rules.PeakEarningsMultiplier
}
