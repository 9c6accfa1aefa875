package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukfiscal/lifetax/internal/calculation"
	"github.com/ukfiscal/lifetax/internal/domain"
)

// reformOrder fixes the 1-6 toggle ordering shown in the status bar.
var reformOrder = []domain.ReformKey{
	domain.ReformRailFareFreeze,
	domain.ReformFuelDutyFreeze,
	domain.ReformThresholdFreeze,
	domain.ReformUnearnedIncomeTax,
	domain.ReformSalarySacrificeCap,
	domain.ReformSLThresholdFreeze,
}

// Model is the interactive results browser: one simulation result, a
// toggle per reform, and a nominal/real switch. Every toggle re-runs the
// engine; the year table and totals update in place.
type Model struct {
	engine  *calculation.Engine
	profile domain.TaxpayerProfile

	enabled   map[domain.ReformKey]bool
	realTerms bool

	result *domain.SimulationResult
	table  table.Model
	keys   KeyMap

	width   int
	height  int
	loading bool
	err     error
}

// NewModel builds the browser around an engine and a validated profile.
func NewModel(engine *calculation.Engine, profile domain.TaxpayerProfile) Model {
	enabled := make(map[domain.ReformKey]bool, len(reformOrder))
	for _, key := range reformOrder {
		enabled[key] = true
	}
	return Model{
		engine:  engine,
		profile: profile,
		enabled: enabled,
		table:   newYearTable(),
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// Init kicks off the first simulation.
func (m Model) Init() tea.Cmd {
	return m.simulateCmd()
}

// selectedReforms converts the toggle map to engine request keys. All
// toggles off means an explicit empty evaluation, not "all".
func (m Model) selectedReforms() []string {
	keys := make([]string, 0, len(reformOrder))
	for _, key := range reformOrder {
		if m.enabled[key] {
			keys = append(keys, string(key))
		}
	}
	return keys
}

func (m Model) simulateCmd() tea.Cmd {
	engine := m.engine
	req := &domain.SimulationRequest{
		Profile:   m.profile,
		Reforms:   m.selectedReforms(),
		RealTerms: m.realTerms,
	}
	return func() tea.Msg {
		if len(req.Reforms) == 0 {
			return SimulationDoneMsg{Result: emptyResult(engine, req)}
		}
		result, err := engine.Run(req)
		if err != nil {
			return SimulationErrMsg{Err: err}
		}
		return SimulationDoneMsg{Result: result}
	}
}

// emptyResult runs the engine with every reform disabled by requesting a
// single known key and zeroing it out of the display. The engine treats
// an empty reform list as "all", so the browser handles none-selected
// itself.
func emptyResult(engine *calculation.Engine, req *domain.SimulationRequest) *domain.SimulationResult {
	probe := *req
	probe.Reforms = []string{string(domain.ReformRailFareFreeze)}
	result, err := engine.Run(&probe)
	if err != nil {
		return &domain.SimulationResult{RealTerms: req.RealTerms}
	}
	for i := range result.Rows {
		result.Rows[i].ImpactSet = domain.ImpactSet{}
	}
	result.Summary = domain.LifetimeSummary{}
	return result
}

func newYearTable() table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 4},
		{Title: "Year", Width: 5},
		{Title: "Gross", Width: 11},
		{Title: "Tax", Width: 10},
		{Title: "NICs", Width: 9},
		{Title: "Loan", Width: 9},
		{Title: "Impact", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle
	styles.Selected = tableSelectedStyle
	t.SetStyles(styles)
	return t
}

// refreshTable rebuilds the year rows after a simulation finishes.
func (m *Model) refreshTable() {
	if m.result == nil {
		m.table.SetRows(nil)
		return
	}
	rows := make([]table.Row, 0, len(m.result.Rows))
	for _, r := range m.result.Rows {
		impact := r.ImpactSet.Total()
		if m.realTerms {
			impact = m.engine.Aggregator.RealValue(impact, r.Year)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", r.Age),
			fmt.Sprintf("%d", r.Year),
			r.GrossIncome.StringFixed(0),
			r.IncomeTax.StringFixed(0),
			r.NationalInsurance.StringFixed(0),
			r.StudentLoanPayment.StringFixed(0),
			impact.StringFixed(2),
		})
	}
	m.table.SetRows(rows)
}

// KeyMap lists the browser's key bindings.
type KeyMap struct {
	Quit      key.Binding
	RealTerms key.Binding
	Toggle    key.Binding
	Rerun     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		RealTerms: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "real/nominal"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "toggle reform"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "re-run"),
		),
	}
}
