package domain

import "github.com/shopspring/decimal"

// FiscalRules holds the statutory base-year parameters and inflation
// forecast tables every calculation is derived from. Defaults reflect the
// 2025/26 UK tax year and the OBR November 2025 Economic and Fiscal
// Outlook (Table 1.7 for CPI/RPI, long-run equilibrium thereafter).
// Any field can be overridden from a rules YAML file.
type FiscalRules struct {
	// BaseYear is the first simulated calendar year. ReferenceYear anchors
	// the deflator: real values are expressed in ReferenceYear pounds.
	BaseYear      int `yaml:"base_year" json:"base_year"`
	ReferenceYear int `yaml:"reference_year" json:"reference_year"`

	CPIForecasts map[int]decimal.Decimal `yaml:"cpi_forecasts" json:"cpi_forecasts"`
	CPILongRun   decimal.Decimal         `yaml:"cpi_long_run" json:"cpi_long_run"`
	RPIForecasts map[int]decimal.Decimal `yaml:"rpi_forecasts" json:"rpi_forecasts"`
	RPILongRun   decimal.Decimal         `yaml:"rpi_long_run" json:"rpi_long_run"`

	// Income tax.
	PersonalAllowance       decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	BasicRateThreshold      decimal.Decimal `yaml:"basic_rate_threshold" json:"basic_rate_threshold"`
	AdditionalRateThreshold decimal.Decimal `yaml:"additional_rate_threshold" json:"additional_rate_threshold"`
	BasicRate               decimal.Decimal `yaml:"basic_rate" json:"basic_rate"`
	HigherRate              decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`
	AdditionalRate          decimal.Decimal `yaml:"additional_rate" json:"additional_rate"`
	TaperThreshold          decimal.Decimal `yaml:"taper_threshold" json:"taper_threshold"`
	TaperRate               decimal.Decimal `yaml:"taper_rate" json:"taper_rate"`

	// National Insurance.
	NIPrimaryThreshold   decimal.Decimal `yaml:"ni_primary_threshold" json:"ni_primary_threshold"`
	NIUpperEarningsLimit decimal.Decimal `yaml:"ni_upper_earnings_limit" json:"ni_upper_earnings_limit"`
	NIMainRate           decimal.Decimal `yaml:"ni_main_rate" json:"ni_main_rate"`
	NIUpperRate          decimal.Decimal `yaml:"ni_upper_rate" json:"ni_upper_rate"`
	EmployerNIRate       decimal.Decimal `yaml:"employer_ni_rate" json:"employer_ni_rate"`

	// Student loan (Plan 2).
	StudentLoanThreshold        decimal.Decimal `yaml:"student_loan_threshold" json:"student_loan_threshold"`
	StudentLoanRate             decimal.Decimal `yaml:"student_loan_rate" json:"student_loan_rate"`
	StudentLoanInterestMargin   decimal.Decimal `yaml:"student_loan_interest_margin" json:"student_loan_interest_margin"`
	StudentLoanInterestCap      decimal.Decimal `yaml:"student_loan_interest_cap" json:"student_loan_interest_cap"`
	StudentLoanForgivenessYears int             `yaml:"student_loan_forgiveness_years" json:"student_loan_forgiveness_years"`

	// Fuel duty, per litre. The reform keeps the 5p cut until the phased
	// unwind beginning in FuelDutyPhaseYear; the unfrozen baseline charges
	// the full rate throughout.
	FuelDutyFrozen      decimal.Decimal `yaml:"fuel_duty_frozen" json:"fuel_duty_frozen"`
	FuelDutyPhased      decimal.Decimal `yaml:"fuel_duty_phased" json:"fuel_duty_phased"`
	FuelDutyFull        decimal.Decimal `yaml:"fuel_duty_full" json:"fuel_duty_full"`
	FuelDutyUnfrozen    decimal.Decimal `yaml:"fuel_duty_unfrozen" json:"fuel_duty_unfrozen"`
	FuelDutyPhaseYear   int             `yaml:"fuel_duty_phase_year" json:"fuel_duty_phase_year"`
	PetrolPricePerLitre decimal.Decimal `yaml:"petrol_price_per_litre" json:"petrol_price_per_litre"`

	// Salary sacrifice NIC cap.
	SalarySacrificeCap decimal.Decimal `yaml:"salary_sacrifice_cap" json:"salary_sacrifice_cap"`

	// Unearned income.
	DividendAllowance      decimal.Decimal `yaml:"dividend_allowance" json:"dividend_allowance"`
	SavingsAllowanceBasic  decimal.Decimal `yaml:"savings_allowance_basic" json:"savings_allowance_basic"`
	SavingsAllowanceHigher decimal.Decimal `yaml:"savings_allowance_higher" json:"savings_allowance_higher"`
	DividendRateBasic      decimal.Decimal `yaml:"dividend_rate_basic" json:"dividend_rate_basic"`
	DividendRateHigher     decimal.Decimal `yaml:"dividend_rate_higher" json:"dividend_rate_higher"`
	UnearnedSurcharge      decimal.Decimal `yaml:"unearned_surcharge" json:"unearned_surcharge"`

	// Indexation switch-on years. Baseline thresholds start tracking
	// inflation in the baseline year; the reform extends the freeze to the
	// reform year, after which both index.
	ThresholdUnfreezeBaseline   int `yaml:"threshold_unfreeze_baseline" json:"threshold_unfreeze_baseline"`
	ThresholdUnfreezeReform     int `yaml:"threshold_unfreeze_reform" json:"threshold_unfreeze_reform"`
	SLThresholdUnfreezeBaseline int `yaml:"sl_threshold_unfreeze_baseline" json:"sl_threshold_unfreeze_baseline"`
	SLThresholdUnfreezeReform   int `yaml:"sl_threshold_unfreeze_reform" json:"sl_threshold_unfreeze_reform"`
	RailFareCapYear             int `yaml:"rail_fare_cap_year" json:"rail_fare_cap_year"`

	// Earnings profile: multiplier on age-22 pay, plateauing at the peak
	// from age 50 onwards.
	GraduationAge          int                     `yaml:"graduation_age" json:"graduation_age"`
	EarningsCurve          map[int]decimal.Decimal `yaml:"earnings_curve" json:"earnings_curve"`
	PeakEarningsMultiplier decimal.Decimal         `yaml:"peak_earnings_multiplier" json:"peak_earnings_multiplier"`
}

// DefaultFiscalRules returns the built-in 2025/26 parameter set.
func DefaultFiscalRules() FiscalRules {
	d := decimal.NewFromFloat
	return FiscalRules{
		BaseYear:      2025,
		ReferenceYear: 2025,

		CPIForecasts: map[int]decimal.Decimal{
			2024: d(0.0233), 2025: d(0.0318), 2026: d(0.0193),
			2027: d(0.0200), 2028: d(0.0200), 2029: d(0.0200),
		},
		CPILongRun: d(0.0200),
		RPIForecasts: map[int]decimal.Decimal{
			2024: d(0.0331), 2025: d(0.0416), 2026: d(0.0308),
			2027: d(0.0300), 2028: d(0.0283), 2029: d(0.0283),
		},
		RPILongRun: d(0.0239),

		PersonalAllowance:       decimal.NewFromInt(12570),
		BasicRateThreshold:      decimal.NewFromInt(50270),
		AdditionalRateThreshold: decimal.NewFromInt(125140),
		BasicRate:               d(0.20),
		HigherRate:              d(0.40),
		AdditionalRate:          d(0.45),
		TaperThreshold:          decimal.NewFromInt(100000),
		TaperRate:               d(0.50),

		NIPrimaryThreshold:   decimal.NewFromInt(12570),
		NIUpperEarningsLimit: decimal.NewFromInt(50270),
		NIMainRate:           d(0.08),
		NIUpperRate:          d(0.02),
		EmployerNIRate:       d(0.15),

		StudentLoanThreshold:        decimal.NewFromInt(27295),
		StudentLoanRate:             d(0.09),
		StudentLoanInterestMargin:   d(0.03),
		StudentLoanInterestCap:      d(0.071),
		StudentLoanForgivenessYears: 30,

		// 52.95p frozen; FY 2026-27 unwinds the 5p cut in steps (+1p Sep,
		// +2p Dec, +2p Mar), a 54.37p weighted average for the year.
		FuelDutyFrozen:      d(0.5295),
		FuelDutyPhased:      d(0.5437),
		FuelDutyFull:        d(0.5795),
		FuelDutyUnfrozen:    d(0.58),
		FuelDutyPhaseYear:   2026,
		PetrolPricePerLitre: d(1.40),

		SalarySacrificeCap: decimal.NewFromInt(2000),

		DividendAllowance:      decimal.NewFromInt(500),
		SavingsAllowanceBasic:  decimal.NewFromInt(1000),
		SavingsAllowanceHigher: decimal.NewFromInt(500),
		DividendRateBasic:      d(0.0875),
		DividendRateHigher:     d(0.3375),
		UnearnedSurcharge:      d(0.05),

		ThresholdUnfreezeBaseline:   2028,
		ThresholdUnfreezeReform:     2030,
		SLThresholdUnfreezeBaseline: 2027,
		SLThresholdUnfreezeReform:   2030,
		RailFareCapYear:             2026,

		GraduationAge: 22,
		EarningsCurve: map[int]decimal.Decimal{
			22: d(1.00), 23: d(1.05), 24: d(1.10), 25: d(1.16), 26: d(1.22),
			27: d(1.28), 28: d(1.35), 29: d(1.42), 30: d(1.50), 31: d(1.55),
			32: d(1.60), 33: d(1.65), 34: d(1.70), 35: d(1.75), 36: d(1.80),
			37: d(1.84), 38: d(1.88), 39: d(1.92), 40: d(1.96), 41: d(2.00),
			42: d(2.03), 43: d(2.06), 44: d(2.09), 45: d(2.12), 46: d(2.14),
			47: d(2.16), 48: d(2.18), 49: d(2.19), 50: d(2.20),
		},
		PeakEarningsMultiplier: d(2.20),
	}
}
