package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// Aggregator folds per-year impact deltas into lifetime totals. Real
// totals deflate each row through the shared InflationProjector; there is
// no second copy of that division anywhere.
type Aggregator struct {
	inflation *InflationProjector
}

// NewAggregator builds an aggregator on the engine's projector.
func NewAggregator(inflation *InflationProjector) *Aggregator {
	return &Aggregator{inflation: inflation}
}

// RealValue deflates one row-level nominal amount to reference-year
// pounds. Presentation layers showing per-row real values use this, not
// their own division.
func (a *Aggregator) RealValue(nominal decimal.Decimal, year int) decimal.Decimal {
	return a.inflation.Deflate(nominal, year)
}

// LifetimeTotal sums every impact column across every row, nominally or
// deflated per row.
func (a *Aggregator) LifetimeTotal(rows []domain.YearRow, realTerms bool) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		rowTotal := row.ImpactSet.Total()
		if realTerms {
			rowTotal = a.RealValue(rowTotal, row.Year)
		}
		total = total.Add(rowTotal)
	}
	return total
}

// Summarize computes the lifetime totals in both modes, with per-category
// splits.
func (a *Aggregator) Summarize(rows []domain.YearRow) domain.LifetimeSummary {
	var summary domain.LifetimeSummary
	for _, row := range rows {
		factor := a.inflation.CumulativeInflation(row.Year)
		for _, reform := range domain.AllReforms() {
			nominal := row.ImpactSet.Get(reform.Key)
			summary.NominalByReform.Set(reform.Key, summary.NominalByReform.Get(reform.Key).Add(nominal))
			summary.RealByReform.Set(reform.Key, summary.RealByReform.Get(reform.Key).Add(nominal.Div(factor)))
		}
	}
	summary.NominalTotal = summary.NominalByReform.Total()
	summary.RealTotal = summary.RealByReform.Total()
	return summary
}
