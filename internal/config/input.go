package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// InputParser handles parsing of simulation input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation request from a YAML file. JSON also
// parses, yaml.v3 accepts it as a subset.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a simulation request.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationRequest, error) {
	var req domain.SimulationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest checks the profile invariants and resolves every reform
// key, so the engine never sees a request it would reject.
func (ip *InputParser) ValidateRequest(req *domain.SimulationRequest) error {
	if err := req.Profile.Validate(); err != nil {
		return err
	}
	for _, key := range req.Reforms {
		if _, err := domain.ParseReformKey(key); err != nil {
			return err
		}
	}
	return nil
}

// LoadRules loads a fiscal rule set from a YAML file. The file only needs
// the fields it overrides; everything else keeps the built-in value.
func (ip *InputParser) LoadRules(filename string) (domain.FiscalRules, error) {
	rules := domain.DefaultFiscalRules()
	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return rules, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.validateRules(&rules); err != nil {
		return rules, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

func (ip *InputParser) validateRules(rules *domain.FiscalRules) error {
	if rules.BaseYear <= 0 {
		return fmt.Errorf("base year must be positive, got %d", rules.BaseYear)
	}
	if rules.ReferenceYear < rules.BaseYear-1 {
		return fmt.Errorf("reference year %d cannot predate the year before the base year %d",
			rules.ReferenceYear, rules.BaseYear)
	}
	if rules.PersonalAllowance.IsNegative() {
		return fmt.Errorf("personal allowance cannot be negative, got %s", rules.PersonalAllowance)
	}
	if rules.TaperThreshold.LessThan(rules.PersonalAllowance) {
		return fmt.Errorf("taper threshold %s cannot sit below the personal allowance %s",
			rules.TaperThreshold, rules.PersonalAllowance)
	}
	if rules.BasicRateThreshold.LessThan(rules.PersonalAllowance) {
		return fmt.Errorf("basic rate threshold %s cannot sit below the personal allowance %s",
			rules.BasicRateThreshold, rules.PersonalAllowance)
	}
	if rules.AdditionalRateThreshold.LessThan(rules.BasicRateThreshold) {
		return fmt.Errorf("additional rate threshold %s cannot sit below the basic rate threshold %s",
			rules.AdditionalRateThreshold, rules.BasicRateThreshold)
	}
	for _, r := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"basic_rate", rules.BasicRate},
		{"higher_rate", rules.HigherRate},
		{"additional_rate", rules.AdditionalRate},
		{"ni_main_rate", rules.NIMainRate},
		{"ni_upper_rate", rules.NIUpperRate},
		{"student_loan_rate", rules.StudentLoanRate},
	} {
		if r.rate.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", r.name, r.rate)
		}
	}
	if rules.StudentLoanForgivenessYears <= 0 {
		return fmt.Errorf("student loan forgiveness years must be positive, got %d", rules.StudentLoanForgivenessYears)
	}
	if rules.PetrolPricePerLitre.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("petrol price per litre must be positive, got %s", rules.PetrolPricePerLitre)
	}
	if len(rules.EarningsCurve) == 0 {
		return fmt.Errorf("earnings curve cannot be empty")
	}
	return nil
}
