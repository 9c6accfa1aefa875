package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ReformKey identifies one independently toggleable reform category.
type ReformKey string

const (
	ReformRailFareFreeze     ReformKey = "rail_fare_freeze"
	ReformFuelDutyFreeze     ReformKey = "fuel_duty_freeze"
	ReformThresholdFreeze    ReformKey = "threshold_freeze"
	ReformUnearnedIncomeTax  ReformKey = "unearned_income_tax"
	ReformSalarySacrificeCap ReformKey = "salary_sacrifice_cap"
	ReformSLThresholdFreeze  ReformKey = "sl_threshold_freeze"
)

// Reform describes a category for registries and presentation layers.
type Reform struct {
	Key         ReformKey
	Name        string
	Description string
}

var reformRegistry = map[ReformKey]Reform{
	ReformRailFareFreeze: {
		Key:         ReformRailFareFreeze,
		Name:        "Rail fare freeze",
		Description: "Caps the 2026 regulated rail fare uplift instead of the RPI-linked rise",
	},
	ReformFuelDutyFreeze: {
		Key:         ReformFuelDutyFreeze,
		Name:        "Fuel duty freeze",
		Description: "Keeps the 5p fuel duty cut, phasing back to the full rate from 2026",
	},
	ReformThresholdFreeze: {
		Key:         ReformThresholdFreeze,
		Name:        "Income tax threshold freeze",
		Description: "Extends the freeze on the personal allowance and rate thresholds to 2030",
	},
	ReformUnearnedIncomeTax: {
		Key:         ReformUnearnedIncomeTax,
		Name:        "Unearned income tax rise",
		Description: "Adds a surcharge to dividend, savings and property income tax",
	},
	ReformSalarySacrificeCap: {
		Key:         ReformSalarySacrificeCap,
		Name:        "Salary sacrifice cap",
		Description: "Charges NICs on pension salary sacrifice above the annual cap",
	},
	ReformSLThresholdFreeze: {
		Key:         ReformSLThresholdFreeze,
		Name:        "Student loan threshold freeze",
		Description: "Extends the freeze on the Plan 2 repayment threshold to 2030",
	},
}

// AllReforms returns every registered reform, ordered by key.
func AllReforms() []Reform {
	reforms := make([]Reform, 0, len(reformRegistry))
	for _, r := range reformRegistry {
		reforms = append(reforms, r)
	}
	sort.Slice(reforms, func(i, j int) bool { return reforms[i].Key < reforms[j].Key })
	return reforms
}

// ParseReformKey validates a wire-format key. The "impact_" column prefix
// is accepted as an alias. Unknown keys are rejected rather than silently
// ignored.
func ParseReformKey(s string) (ReformKey, error) {
	key := ReformKey(strings.TrimPrefix(s, "impact_"))
	if _, ok := reformRegistry[key]; !ok {
		return "", fmt.Errorf("unknown reform key: %q", s)
	}
	return key, nil
}

// ReformSet is the capability set of enabled reforms for one request.
type ReformSet map[ReformKey]bool

// NewReformSet builds a set from wire-format keys. An empty list enables
// every reform.
func NewReformSet(keys []string) (ReformSet, error) {
	set := make(ReformSet, len(reformRegistry))
	if len(keys) == 0 {
		for key := range reformRegistry {
			set[key] = true
		}
		return set, nil
	}
	for _, s := range keys {
		key, err := ParseReformKey(s)
		if err != nil {
			return nil, err
		}
		set[key] = true
	}
	return set, nil
}

// Enabled reports whether a category is switched on.
func (s ReformSet) Enabled(key ReformKey) bool { return s[key] }

// ImpactSet carries the per-category nominal deltas for one simulated
// year. Field names are the wire-format impact columns.
type ImpactSet struct {
	RailFareFreeze     decimal.Decimal `yaml:"impact_rail_fare_freeze" json:"impact_rail_fare_freeze"`
	FuelDutyFreeze     decimal.Decimal `yaml:"impact_fuel_duty_freeze" json:"impact_fuel_duty_freeze"`
	ThresholdFreeze    decimal.Decimal `yaml:"impact_threshold_freeze" json:"impact_threshold_freeze"`
	UnearnedIncomeTax  decimal.Decimal `yaml:"impact_unearned_income_tax" json:"impact_unearned_income_tax"`
	SalarySacrificeCap decimal.Decimal `yaml:"impact_salary_sacrifice_cap" json:"impact_salary_sacrifice_cap"`
	SLThresholdFreeze  decimal.Decimal `yaml:"impact_sl_threshold_freeze" json:"impact_sl_threshold_freeze"`
}

// Get returns the delta for one category.
func (s ImpactSet) Get(key ReformKey) decimal.Decimal {
	switch key {
	case ReformRailFareFreeze:
		return s.RailFareFreeze
	case ReformFuelDutyFreeze:
		return s.FuelDutyFreeze
	case ReformThresholdFreeze:
		return s.ThresholdFreeze
	case ReformUnearnedIncomeTax:
		return s.UnearnedIncomeTax
	case ReformSalarySacrificeCap:
		return s.SalarySacrificeCap
	case ReformSLThresholdFreeze:
		return s.SLThresholdFreeze
	}
	return decimal.Zero
}

// Set stores the delta for one category.
func (s *ImpactSet) Set(key ReformKey, value decimal.Decimal) {
	switch key {
	case ReformRailFareFreeze:
		s.RailFareFreeze = value
	case ReformFuelDutyFreeze:
		s.FuelDutyFreeze = value
	case ReformThresholdFreeze:
		s.ThresholdFreeze = value
	case ReformUnearnedIncomeTax:
		s.UnearnedIncomeTax = value
	case ReformSalarySacrificeCap:
		s.SalarySacrificeCap = value
	case ReformSLThresholdFreeze:
		s.SLThresholdFreeze = value
	}
}

// Total sums every category delta.
func (s ImpactSet) Total() decimal.Decimal {
	return s.RailFareFreeze.
		Add(s.FuelDutyFreeze).
		Add(s.ThresholdFreeze).
		Add(s.UnearnedIncomeTax).
		Add(s.SalarySacrificeCap).
		Add(s.SLThresholdFreeze)
}
