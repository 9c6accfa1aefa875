package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukfiscal/lifetax/internal/domain"
)

func TestRun_FullLifetime(t *testing.T) {
	engine := NewEngine()
	profile := testProfile()

	result, err := engine.Run(&domain.SimulationRequest{Profile: profile})
	require.NoError(t, err)

	require.Len(t, result.Rows, 56, "one row per age from 30 to 85")
	assert.Equal(t, 30, result.Rows[0].Age)
	assert.Equal(t, 2025, result.Rows[0].Year)
	assert.Equal(t, 85, result.Rows[55].Age)
	assert.Equal(t, 2080, result.Rows[55].Year)
}

func TestRun_InvalidProfile(t *testing.T) {
	engine := NewEngine()
	profile := testProfile()
	profile.RetirementAge = 20

	_, err := engine.Run(&domain.SimulationRequest{Profile: profile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRun_UnknownReform(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Run(&domain.SimulationRequest{
		Profile: testProfile(),
		Reforms: []string{"wealth_tax"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wealth_tax")
}

func TestRun_FirstRowHeadlineCharges(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run(&domain.SimulationRequest{Profile: testProfile()})
	require.NoError(t, err)

	first := result.Rows[0]
	// 45000 gross: 20% on the 32430 over the allowance; NI 8% on the same slice.
	assert.Equal(t, "6486.00", first.IncomeTax.StringFixed(2), "basic-rate income tax")
	assert.Equal(t, "2594.40", first.NationalInsurance.StringFixed(2), "employee NICs")
	// 9% of the 17705 over the Plan 2 threshold.
	assert.Equal(t, "1593.45", first.StudentLoanPayment.StringFixed(2), "student loan repayment")
}

func TestRun_NetIncomeIdentity(t *testing.T) {
	engine := NewEngine()
	profile := testProfile()

	result, err := engine.Run(&domain.SimulationRequest{Profile: profile})
	require.NoError(t, err)

	unearned := NewUnearnedIncomeCalculator(domain.DefaultFiscalRules())
	for _, row := range result.Rows {
		unearnedTax := unearned.Tax(profile.DividendsPerYear, profile.SavingsInterestPerYear,
			profile.PropertyIncomePerYear, row.GrossIncome, false)
		expected := row.GrossIncome.Sub(row.IncomeTax).Sub(row.NationalInsurance).
			Sub(row.StudentLoanPayment).Sub(unearnedTax).
			Sub(profile.RailSpendingPerYear).Sub(profile.PetrolSpendingPerYear)
		assert.True(t, row.BaselineNetIncome.Equal(expected),
			"net income identity must hold in year %d", row.Year)
	}
}

func TestRun_ThresholdImpactRecomputableFromRowParameters(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run(&domain.SimulationRequest{Profile: testProfile()})
	require.NoError(t, err)

	tc := NewTaxBandCalculator(domain.DefaultFiscalRules())
	for _, row := range result.Rows {
		baselineTax := tc.LiabilityUnder(row.GrossIncome, row.BaselineParameters()).Tax
		reformTax := tc.LiabilityUnder(row.GrossIncome, row.ReformParameters()).Tax
		assert.True(t, row.ThresholdFreeze.Equal(baselineTax.Sub(reformTax)),
			"threshold impact must follow from the row's own parameters, year %d", row.Year)
	}
}

func TestRun_SummaryMatchesRowSums(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run(&domain.SimulationRequest{Profile: testProfile()})
	require.NoError(t, err)

	nominal := decimal.Zero
	for _, row := range result.Rows {
		nominal = nominal.Add(row.ImpactSet.Total())
	}
	assert.True(t, result.Summary.NominalTotal.Equal(nominal),
		"nominal lifetime total is the sum of the rows")
	assert.True(t, result.Summary.NominalTotal.Equal(result.Summary.NominalByReform.Total()),
		"headline total matches the per-category split")
	assert.True(t, result.Summary.RealTotal.Equal(result.Summary.RealByReform.Total()),
		"real total matches the per-category split")
}

func TestRun_RealTotalBelowNominalMagnitude(t *testing.T) {
	engine := NewEngine()

	result, err := engine.Run(&domain.SimulationRequest{Profile: testProfile()})
	require.NoError(t, err)

	// Every row past the reference year deflates by a factor above one, so
	// the real total's magnitude must shrink.
	assert.True(t, result.Summary.RealTotal.Abs().LessThan(result.Summary.NominalTotal.Abs()),
		"deflation must shrink the lifetime total, nominal %s real %s",
		result.Summary.NominalTotal, result.Summary.RealTotal)
}

func TestRun_DeterministicAcrossCalls(t *testing.T) {
	engine := NewEngine()
	req := &domain.SimulationRequest{Profile: testProfile()}

	a, err := engine.Run(req)
	require.NoError(t, err)
	b, err := engine.Run(req)
	require.NoError(t, err)

	require.Len(t, b.Rows, len(a.Rows))
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i], b.Rows[i], "row %d must be identical across runs", i)
	}
	assert.True(t, a.Summary.NominalTotal.Equal(b.Summary.NominalTotal))
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
