package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukfiscal/lifetax/internal/domain"
)

const validRequest = `
profile:
  current_age: 30
  current_salary: 45000
  retirement_age: 67
  life_expectancy: 85
  student_loan_debt: 50000
  salary_sacrifice_per_year: 5000
  rail_spending_per_year: 2000
  petrol_spending_per_year: 1500
  dividends_per_year: 2000
  savings_interest_per_year: 1500
  property_income_per_year: 3000
reforms:
  - rail_fare_freeze
  - fuel_duty_freeze
real_terms: true
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_ValidRequest(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.LoadFromFile(writeTemp(t, validRequest))
	require.NoError(t, err)

	assert.Equal(t, 30, req.Profile.CurrentAge)
	assert.True(t, req.Profile.CurrentSalary.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, []string{"rail_fare_freeze", "fuel_duty_freeze"}, req.Reforms)
	assert.True(t, req.RealTerms)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("/nonexistent/input.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_MalformedYAML(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Parse([]byte("profile: [not: a: mapping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_InvalidProfileRejected(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Parse([]byte(`
profile:
  current_age: 70
  current_salary: 45000
  retirement_age: 67
  life_expectancy: 85
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request validation failed")
}

func TestParse_UnknownReformRejected(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Parse([]byte(`
profile:
  current_age: 30
  current_salary: 45000
  retirement_age: 67
  life_expectancy: 85
reforms:
  - mansion_tax
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mansion_tax")
}

func TestParse_ImpactPrefixAccepted(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.Parse([]byte(`
profile:
  current_age: 30
  current_salary: 45000
  retirement_age: 67
  life_expectancy: 85
reforms:
  - impact_threshold_freeze
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"impact_threshold_freeze"}, req.Reforms)
}

func TestLoadRules_OverridesMergeWithDefaults(t *testing.T) {
	parser := NewInputParser()
	path := writeTemp(t, `
personal_allowance: 15000
taper_threshold: 110000
`)

	rules, err := parser.LoadRules(path)
	require.NoError(t, err)

	assert.True(t, rules.PersonalAllowance.Equal(decimal.NewFromInt(15000)), "overridden")
	assert.True(t, rules.TaperThreshold.Equal(decimal.NewFromInt(110000)), "overridden")
	defaults := domain.DefaultFiscalRules()
	assert.True(t, rules.BasicRateThreshold.Equal(defaults.BasicRateThreshold), "untouched default survives")
	assert.Equal(t, defaults.BaseYear, rules.BaseYear, "untouched default survives")
}

func TestLoadRules_InvalidOrderingRejected(t *testing.T) {
	parser := NewInputParser()
	path := writeTemp(t, `
basic_rate_threshold: 10000
`)

	_, err := parser.LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules validation failed")
}

func TestLoadRules_NegativeRateRejected(t *testing.T) {
	parser := NewInputParser()
	path := writeTemp(t, `
basic_rate: -0.20
`)

	_, err := parser.LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basic_rate")
}
