package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ukfiscal/lifetax/internal/domain"
)

func fixedRows() []domain.YearRow {
	rows := []domain.YearRow{
		{Year: 2025}, {Year: 2030}, {Year: 2050},
	}
	rows[0].ImpactSet.Set(domain.ReformRailFareFreeze, decimal.NewFromInt(100))
	rows[1].ImpactSet.Set(domain.ReformRailFareFreeze, decimal.NewFromInt(100))
	rows[1].ImpactSet.Set(domain.ReformThresholdFreeze, decimal.NewFromInt(-250))
	rows[2].ImpactSet.Set(domain.ReformSLThresholdFreeze, decimal.NewFromInt(-50))
	return rows
}

func TestLifetimeTotal_Nominal(t *testing.T) {
	agg := NewAggregator(NewInflationProjector(domain.DefaultFiscalRules()))

	total := agg.LifetimeTotal(fixedRows(), false)
	assert.Equal(t, "-100.00", total.StringFixed(2), "100 + 100 - 250 - 50")
}

func TestLifetimeTotal_RealDeflatesPerRow(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())
	agg := NewAggregator(ip)
	rows := fixedRows()

	expected := decimal.NewFromInt(100).
		Add(decimal.NewFromInt(-150).Div(ip.CumulativeInflation(2030))).
		Add(decimal.NewFromInt(-50).Div(ip.CumulativeInflation(2050)))

	total := agg.LifetimeTotal(rows, true)
	assert.True(t, total.Sub(expected).Abs().LessThan(decimal.NewFromFloat(1e-9)),
		"each row deflates by its own year's factor, got %s want %s", total, expected)
}

func TestRealValue_ReferenceYearUnchanged(t *testing.T) {
	agg := NewAggregator(NewInflationProjector(domain.DefaultFiscalRules()))

	v := decimal.NewFromInt(1234)
	assert.True(t, agg.RealValue(v, 2025).Equal(v), "reference-year pounds deflate to themselves")
	assert.True(t, agg.RealValue(v, 2050).LessThan(v), "later pounds are worth less")
}

func TestSummarize_SplitsByCategory(t *testing.T) {
	ip := NewInflationProjector(domain.DefaultFiscalRules())
	agg := NewAggregator(ip)

	summary := agg.Summarize(fixedRows())

	assert.Equal(t, "200.00", summary.NominalByReform.RailFareFreeze.StringFixed(2))
	assert.Equal(t, "-250.00", summary.NominalByReform.ThresholdFreeze.StringFixed(2))
	assert.Equal(t, "-50.00", summary.NominalByReform.SLThresholdFreeze.StringFixed(2))
	assert.True(t, summary.NominalByReform.FuelDutyFreeze.IsZero())

	assert.True(t, summary.NominalTotal.Equal(summary.NominalByReform.Total()),
		"headline equals the split")
	assert.True(t, summary.RealTotal.Equal(summary.RealByReform.Total()),
		"real headline equals the real split")

	// The 2025 rail saving survives deflation untouched; everything later shrinks.
	assert.True(t, summary.RealByReform.RailFareFreeze.LessThan(summary.NominalByReform.RailFareFreeze))
	assert.True(t, summary.RealByReform.ThresholdFreeze.GreaterThan(summary.NominalByReform.ThresholdFreeze))
}
