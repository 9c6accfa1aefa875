package tui

import "github.com/ukfiscal/lifetax/internal/domain"

// SimulationDoneMsg carries a finished simulation back to the model.
type SimulationDoneMsg struct {
	Result *domain.SimulationResult
}

// SimulationErrMsg carries an engine failure back to the model.
type SimulationErrMsg struct {
	Err error
}
