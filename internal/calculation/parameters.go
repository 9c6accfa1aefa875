package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// PolicyModel evaluates the fiscal parameter set in force for a calendar
// year under either scenario. Parameter sets are pure functions of
// (year, scenario, base-year constants); there is no shared table to
// observe half-updated.
type PolicyModel struct {
	rules     domain.FiscalRules
	inflation *InflationProjector
}

// NewPolicyModel builds a model sharing the engine's inflation projector.
func NewPolicyModel(rules domain.FiscalRules, inflation *InflationProjector) *PolicyModel {
	return &PolicyModel{rules: rules, inflation: inflation}
}

// ParametersFor returns a fresh parameter set for one year and scenario.
// Each category's trajectory is computed on its own: freezing the income
// tax thresholds never moves the fuel duty rate.
func (pm *PolicyModel) ParametersFor(year int, scenario domain.Scenario) domain.PolicyParameterSet {
	params := domain.PolicyParameterSet{Year: year, Scenario: scenario}

	unfreezeYear := pm.rules.ThresholdUnfreezeBaseline
	if scenario == domain.ScenarioReform {
		unfreezeYear = pm.rules.ThresholdUnfreezeReform
	}
	growth := pm.inflation.CumulativeCPI(unfreezeYear, year)
	params.PersonalAllowance = pm.rules.PersonalAllowance.Mul(growth)
	params.TaperThreshold = pm.rules.TaperThreshold.Mul(growth)
	params.BasicRateThreshold = pm.rules.BasicRateThreshold.Mul(growth)
	params.AdditionalRateThreshold = pm.rules.AdditionalRateThreshold.Mul(growth)

	params.FuelDutyRate = pm.fuelDutyRate(year, scenario)
	params.RailFareIndex = pm.railFareIndex(year, scenario)
	params.StudentLoanThreshold = pm.studentLoanThreshold(year, scenario)

	return params
}

// fuelDutyRate: the baseline charges the full unfrozen rate throughout;
// the reform keeps the 5p cut, unwinding it in phases from the phase year
// (the phase-year figure is the weighted average of the in-year steps).
// Calendar years stand in for fiscal years here.
func (pm *PolicyModel) fuelDutyRate(year int, scenario domain.Scenario) decimal.Decimal {
	if scenario == domain.ScenarioBaseline {
		return pm.rules.FuelDutyUnfrozen
	}
	switch {
	case year < pm.rules.FuelDutyPhaseYear:
		return pm.rules.FuelDutyFrozen
	case year == pm.rules.FuelDutyPhaseYear:
		return pm.rules.FuelDutyPhased
	default:
		return pm.rules.FuelDutyFull
	}
}

// railFareIndex: regulated fares rise with the prior year's RPI. The
// reform caps the capYear uplift, so from that year on the baseline fare
// base sits one RPI step above the reform's. The index is expressed
// relative to the capped fare.
func (pm *PolicyModel) railFareIndex(year int, scenario domain.Scenario) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if year < pm.rules.RailFareCapYear || scenario == domain.ScenarioReform {
		return one
	}
	return one.Add(pm.inflation.RPI(pm.rules.RailFareCapYear - 1))
}

// studentLoanThreshold: the Plan 2 threshold is RPI-indexed in the
// baseline from its unfreeze year; the reform extends the freeze, then
// indexes from its own later start.
func (pm *PolicyModel) studentLoanThreshold(year int, scenario domain.Scenario) decimal.Decimal {
	unfreezeYear := pm.rules.SLThresholdUnfreezeBaseline
	if scenario == domain.ScenarioReform {
		unfreezeYear = pm.rules.SLThresholdUnfreezeReform
	}
	return pm.rules.StudentLoanThreshold.Mul(pm.inflation.CumulativeRPI(unfreezeYear, year))
}
