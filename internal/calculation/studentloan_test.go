package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ukfiscal/lifetax/internal/domain"
)

func newStudentLoanCalculator() *StudentLoanCalculator {
	rules := domain.DefaultFiscalRules()
	return NewStudentLoanCalculator(rules, NewInflationProjector(rules))
}

func TestAnnualRepayment(t *testing.T) {
	sc := newStudentLoanCalculator()
	threshold := decimal.NewFromInt(27295)

	assert.True(t, sc.AnnualRepayment(decimal.NewFromInt(20000), threshold).IsZero(),
		"no repayment below the threshold")
	assert.True(t, sc.AnnualRepayment(threshold, threshold).IsZero(),
		"no repayment at the threshold")

	repay := sc.AnnualRepayment(decimal.NewFromInt(37295), threshold)
	assert.Equal(t, "900.00", repay.StringFixed(2), "9%% of the 10000 over the threshold")
}

func TestInterestRate_CappedAboveRPI(t *testing.T) {
	sc := newStudentLoanCalculator()

	// 2025 RPI is 4.16%; +3% margin breaches the 7.1% cap.
	assert.Equal(t, "0.0710", sc.InterestRate(2025).StringFixed(4))
	// Long-run RPI 2.39% + 3% stays under the cap.
	assert.Equal(t, "0.0539", sc.InterestRate(2060).StringFixed(4))
}

func TestStep_AccruesInterestWhenUnderThreshold(t *testing.T) {
	sc := newStudentLoanCalculator()

	payment, balance := sc.Step(decimal.NewFromInt(20000), decimal.NewFromInt(40000), 2060, 10)
	assert.True(t, payment.IsZero(), "no payment under the threshold")
	assert.Equal(t, "42156.00", balance.StringFixed(2), "balance grows by 5.39%%")
}

func TestStep_PaymentCappedAtBalance(t *testing.T) {
	sc := newStudentLoanCalculator()

	payment, balance := sc.Step(decimal.NewFromInt(60000), decimal.NewFromInt(100), 2060, 10)
	assert.Equal(t, "100.00", payment.StringFixed(2), "cannot repay more than is owed")
	assert.True(t, balance.IsZero(), "loan cleared")
}

func TestStep_ForgivenessWipesBalance(t *testing.T) {
	sc := newStudentLoanCalculator()

	payment, balance := sc.Step(decimal.NewFromInt(60000), decimal.NewFromInt(40000), 2060, 30)
	assert.True(t, payment.IsZero(), "no payment after forgiveness")
	assert.True(t, balance.IsZero(), "balance written off")
}
