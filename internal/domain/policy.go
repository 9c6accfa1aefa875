package domain

import "github.com/shopspring/decimal"

// Scenario selects which policy trajectory a parameter set belongs to.
type Scenario string

const (
	// ScenarioBaseline indexes parameters to inflation from their statutory
	// unfreeze years.
	ScenarioBaseline Scenario = "baseline"
	// ScenarioReform holds the frozen parameters at their nominal values
	// for as long as each freeze is modelled in effect.
	ScenarioReform Scenario = "reform"
)

// PolicyParameterSet is the fiscal parameter set in force for one calendar
// year under one scenario. Instances are computed fresh per year and never
// mutated.
type PolicyParameterSet struct {
	Year     int      `json:"year"`
	Scenario Scenario `json:"scenario"`

	PersonalAllowance       decimal.Decimal `json:"personal_allowance"`
	TaperThreshold          decimal.Decimal `json:"taper_threshold"`
	BasicRateThreshold      decimal.Decimal `json:"basic_rate_threshold"`
	AdditionalRateThreshold decimal.Decimal `json:"additional_rate_threshold"`
	FuelDutyRate            decimal.Decimal `json:"fuel_duty_rate"`
	RailFareIndex           decimal.Decimal `json:"rail_fare_index"`
	StudentLoanThreshold    decimal.Decimal `json:"student_loan_threshold"`
}
