package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// Logger is the minimal logging surface the engine writes to.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine orchestrates a lifetime simulation: trajectory, per-year
// parameter sets, per-category impacts, lifetime aggregation. It is
// stateless between runs; concurrent Run calls need no coordination.
type Engine struct {
	Rules       domain.FiscalRules
	Inflation   *InflationProjector
	Policy      *PolicyModel
	TaxCalc     *TaxBandCalculator
	NICalc      *NICalculator
	Unearned    *UnearnedIncomeCalculator
	StudentLoan *StudentLoanCalculator
	Trajectory  *TrajectoryGenerator
	Impacts     *ReformImpactCalculator
	Aggregator  *Aggregator
	Logger      Logger
}

// NewEngine creates an engine on the built-in rule set.
func NewEngine() *Engine {
	return NewEngineWithRules(domain.DefaultFiscalRules())
}

// NewEngineWithRules creates an engine on an explicit rule set.
func NewEngineWithRules(rules domain.FiscalRules) *Engine {
	inflation := NewInflationProjector(rules)
	taxCalc := NewTaxBandCalculator(rules)
	niCalc := NewNICalculator(rules)
	unearned := NewUnearnedIncomeCalculator(rules)
	studentLoan := NewStudentLoanCalculator(rules, inflation)
	return &Engine{
		Rules:       rules,
		Inflation:   inflation,
		Policy:      NewPolicyModel(rules, inflation),
		TaxCalc:     taxCalc,
		NICalc:      niCalc,
		Unearned:    unearned,
		StudentLoan: studentLoan,
		Trajectory:  NewTrajectoryGenerator(rules),
		Impacts:     NewReformImpactCalculator(rules, taxCalc, niCalc, unearned, studentLoan),
		Aggregator:  NewAggregator(inflation),
		Logger:      NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes one simulation. Validation failures surface before any
// row is produced; the result is either the full chronological row
// sequence plus lifetime summary, or an error with no partial output.
func (e *Engine) Run(req *domain.SimulationRequest) (*domain.SimulationResult, error) {
	if err := req.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	enabled, err := domain.NewReformSet(req.Reforms)
	if err != nil {
		return nil, err
	}

	points := e.Trajectory.Generate(req.Profile)
	e.Logger.Debugf("simulating %d years, ages %d-%d", len(points),
		req.Profile.CurrentAge, req.Profile.LifeExpectancy)

	rows := make([]domain.YearRow, 0, len(points))
	loanBalance := req.Profile.StudentLoanDebt

	for _, point := range points {
		baseline := e.Policy.ParametersFor(point.Year, domain.ScenarioBaseline)
		reform := e.Policy.ParametersFor(point.Year, domain.ScenarioReform)

		// Headline charges reflect current statutory parameters; the
		// scenario pair only feeds the impact deltas.
		incomeTax := e.TaxCalc.Liability(point.GrossIncome,
			e.Rules.PersonalAllowance, e.Rules.TaperThreshold,
			e.Rules.BasicRateThreshold, e.Rules.AdditionalRateThreshold).Tax
		ni := e.NICalc.Contributions(point.GrossIncome)
		unearnedTax := e.Unearned.Tax(req.Profile.DividendsPerYear,
			req.Profile.SavingsInterestPerYear, req.Profile.PropertyIncomePerYear,
			point.GrossIncome, false)

		ctx := YearContext{
			Age:                  point.Age,
			Year:                 point.Year,
			GrossIncome:          point.GrossIncome,
			Retired:              point.Retired,
			StudentLoanBalance:   loanBalance,
			YearsSinceGraduation: point.YearsSinceGraduation,
			Profile:              &req.Profile,
		}
		impacts := e.Impacts.Compute(enabled, ctx, baseline, reform)

		var loanPayment decimal.Decimal
		loanPayment, loanBalance = e.StudentLoan.Step(point.GrossIncome, loanBalance,
			point.Year, point.YearsSinceGraduation)

		row := domain.YearRow{
			Age:                point.Age,
			Year:               point.Year,
			GrossIncome:        point.GrossIncome,
			IncomeTax:          incomeTax,
			NationalInsurance:  ni,
			StudentLoanPayment: loanPayment,
			StudentLoanDebt:    loanBalance,
			BaselineNetIncome: point.GrossIncome.Sub(incomeTax).Sub(ni).
				Sub(loanPayment).Sub(unearnedTax).
				Sub(req.Profile.RailSpendingPerYear).Sub(req.Profile.PetrolSpendingPerYear),
			ImpactSet: impacts,
		}
		row.SetParameters(baseline, reform)
		rows = append(rows, row)
	}

	result := &domain.SimulationResult{
		Rows:      rows,
		Summary:   e.Aggregator.Summarize(rows),
		RealTerms: req.RealTerms,
	}
	e.Logger.Infof("simulation complete: %d rows, lifetime nominal %s, real %s",
		len(rows), result.Summary.NominalTotal.StringFixed(2), result.Summary.RealTotal.StringFixed(2))
	return result, nil
}
