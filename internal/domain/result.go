package domain

import "github.com/shopspring/decimal"

// YearRow is one simulated calendar year: the income and charges under
// current statutory parameters, the baseline and reform parameter values
// evaluated for the year, and the nominal per-category impact deltas.
// Rows are produced once per request, in chronological order, and never
// mutated afterwards.
type YearRow struct {
	Age  int `yaml:"age" json:"age"`
	Year int `yaml:"year" json:"year"`

	GrossIncome        decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	IncomeTax          decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	NationalInsurance  decimal.Decimal `yaml:"national_insurance" json:"national_insurance"`
	StudentLoanPayment decimal.Decimal `yaml:"student_loan_payment" json:"student_loan_payment"`
	StudentLoanDebt    decimal.Decimal `yaml:"student_loan_debt_remaining" json:"student_loan_debt_remaining"`
	BaselineNetIncome  decimal.Decimal `yaml:"baseline_net_income" json:"baseline_net_income"`

	BaselinePersonalAllowance    decimal.Decimal `yaml:"baseline_personal_allowance" json:"baseline_personal_allowance"`
	BaselineTaperThreshold       decimal.Decimal `yaml:"baseline_taper_threshold" json:"baseline_taper_threshold"`
	BaselineBasicThreshold       decimal.Decimal `yaml:"baseline_basic_threshold" json:"baseline_basic_threshold"`
	BaselineAdditionalThreshold  decimal.Decimal `yaml:"baseline_additional_threshold" json:"baseline_additional_threshold"`
	BaselineFuelDutyRate         decimal.Decimal `yaml:"baseline_fuel_duty_rate" json:"baseline_fuel_duty_rate"`
	BaselineRailFareIndex        decimal.Decimal `yaml:"baseline_rail_fare_index" json:"baseline_rail_fare_index"`
	BaselineStudentLoanThreshold decimal.Decimal `yaml:"baseline_student_loan_threshold" json:"baseline_student_loan_threshold"`

	ReformPersonalAllowance    decimal.Decimal `yaml:"reform_personal_allowance" json:"reform_personal_allowance"`
	ReformTaperThreshold       decimal.Decimal `yaml:"reform_taper_threshold" json:"reform_taper_threshold"`
	ReformBasicThreshold       decimal.Decimal `yaml:"reform_basic_threshold" json:"reform_basic_threshold"`
	ReformAdditionalThreshold  decimal.Decimal `yaml:"reform_additional_threshold" json:"reform_additional_threshold"`
	ReformFuelDutyRate         decimal.Decimal `yaml:"reform_fuel_duty_rate" json:"reform_fuel_duty_rate"`
	ReformRailFareIndex        decimal.Decimal `yaml:"reform_rail_fare_index" json:"reform_rail_fare_index"`
	ReformStudentLoanThreshold decimal.Decimal `yaml:"reform_student_loan_threshold" json:"reform_student_loan_threshold"`

	ImpactSet `yaml:",inline"`
}

// SetParameters copies the two evaluated parameter sets into the row's
// flattened baseline_*/reform_* columns.
func (r *YearRow) SetParameters(baseline, reform PolicyParameterSet) {
	r.BaselinePersonalAllowance = baseline.PersonalAllowance
	r.BaselineTaperThreshold = baseline.TaperThreshold
	r.BaselineBasicThreshold = baseline.BasicRateThreshold
	r.BaselineAdditionalThreshold = baseline.AdditionalRateThreshold
	r.BaselineFuelDutyRate = baseline.FuelDutyRate
	r.BaselineRailFareIndex = baseline.RailFareIndex
	r.BaselineStudentLoanThreshold = baseline.StudentLoanThreshold

	r.ReformPersonalAllowance = reform.PersonalAllowance
	r.ReformTaperThreshold = reform.TaperThreshold
	r.ReformBasicThreshold = reform.BasicRateThreshold
	r.ReformAdditionalThreshold = reform.AdditionalRateThreshold
	r.ReformFuelDutyRate = reform.FuelDutyRate
	r.ReformRailFareIndex = reform.RailFareIndex
	r.ReformStudentLoanThreshold = reform.StudentLoanThreshold
}

// BaselineParameters reconstructs the baseline parameter set stored on the
// row, for consumers that recompute a breakdown from the same inputs.
func (r *YearRow) BaselineParameters() PolicyParameterSet {
	return PolicyParameterSet{
		Year:                    r.Year,
		Scenario:                ScenarioBaseline,
		PersonalAllowance:       r.BaselinePersonalAllowance,
		TaperThreshold:          r.BaselineTaperThreshold,
		BasicRateThreshold:      r.BaselineBasicThreshold,
		AdditionalRateThreshold: r.BaselineAdditionalThreshold,
		FuelDutyRate:            r.BaselineFuelDutyRate,
		RailFareIndex:           r.BaselineRailFareIndex,
		StudentLoanThreshold:    r.BaselineStudentLoanThreshold,
	}
}

// ReformParameters reconstructs the reform parameter set stored on the row.
func (r *YearRow) ReformParameters() PolicyParameterSet {
	return PolicyParameterSet{
		Year:                    r.Year,
		Scenario:                ScenarioReform,
		PersonalAllowance:       r.ReformPersonalAllowance,
		TaperThreshold:          r.ReformTaperThreshold,
		BasicRateThreshold:      r.ReformBasicThreshold,
		AdditionalRateThreshold: r.ReformAdditionalThreshold,
		FuelDutyRate:            r.ReformFuelDutyRate,
		RailFareIndex:           r.ReformRailFareIndex,
		StudentLoanThreshold:    r.ReformStudentLoanThreshold,
	}
}

// LifetimeSummary aggregates the per-year deltas over the whole
// trajectory, in nominal pounds and deflated to reference-year pounds.
type LifetimeSummary struct {
	NominalTotal    decimal.Decimal `yaml:"nominal_total" json:"nominal_total"`
	RealTotal       decimal.Decimal `yaml:"real_total" json:"real_total"`
	NominalByReform ImpactSet       `yaml:"nominal_by_reform" json:"nominal_by_reform"`
	RealByReform    ImpactSet       `yaml:"real_by_reform" json:"real_by_reform"`
}

// SimulationResult is the complete output of one engine run.
type SimulationResult struct {
	Rows      []YearRow       `yaml:"rows" json:"data"`
	Summary   LifetimeSummary `yaml:"summary" json:"summary"`
	RealTerms bool            `yaml:"real_terms" json:"real_terms"`
}
