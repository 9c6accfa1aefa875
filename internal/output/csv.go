package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// CSVFormatter writes the full per-year grid, one row per simulated year,
// with the impact columns last.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"age", "year",
	"gross_income", "income_tax", "national_insurance",
	"student_loan_payment", "student_loan_debt_remaining", "baseline_net_income",
	"baseline_personal_allowance", "baseline_taper_threshold",
	"baseline_basic_threshold", "baseline_additional_threshold",
	"baseline_fuel_duty_rate", "baseline_rail_fare_index", "baseline_student_loan_threshold",
	"reform_personal_allowance", "reform_taper_threshold",
	"reform_basic_threshold", "reform_additional_threshold",
	"reform_fuel_duty_rate", "reform_rail_fare_index", "reform_student_loan_threshold",
	"impact_fuel_duty_freeze", "impact_rail_fare_freeze", "impact_salary_sacrifice_cap",
	"impact_sl_threshold_freeze", "impact_threshold_freeze", "impact_unearned_income_tax",
}

func (c CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range result.Rows {
		record := []string{
			strconv.Itoa(r.Age), strconv.Itoa(r.Year),
			r.GrossIncome.StringFixed(2), r.IncomeTax.StringFixed(2), r.NationalInsurance.StringFixed(2),
			r.StudentLoanPayment.StringFixed(2), r.StudentLoanDebt.StringFixed(2), r.BaselineNetIncome.StringFixed(2),
			r.BaselinePersonalAllowance.StringFixed(2), r.BaselineTaperThreshold.StringFixed(2),
			r.BaselineBasicThreshold.StringFixed(2), r.BaselineAdditionalThreshold.StringFixed(2),
			r.BaselineFuelDutyRate.StringFixed(4), r.BaselineRailFareIndex.StringFixed(6), r.BaselineStudentLoanThreshold.StringFixed(2),
			r.ReformPersonalAllowance.StringFixed(2), r.ReformTaperThreshold.StringFixed(2),
			r.ReformBasicThreshold.StringFixed(2), r.ReformAdditionalThreshold.StringFixed(2),
			r.ReformFuelDutyRate.StringFixed(4), r.ReformRailFareIndex.StringFixed(6), r.ReformStudentLoanThreshold.StringFixed(2),
			r.FuelDutyFreeze.StringFixed(2), r.RailFareFreeze.StringFixed(2), r.SalarySacrificeCap.StringFixed(2),
			r.SLThresholdFreeze.StringFixed(2), r.ThresholdFreeze.StringFixed(2), r.UnearnedIncomeTax.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
