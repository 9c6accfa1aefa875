package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
	"github.com/ukfiscal/lifetax/internal/output"
)

// View renders the whole browser.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Lifetime Tax-Benefit Reform Browser"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderToggles())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(labelStyle.Render("calculating..."))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render(
		"1-6 toggle reform · r real/nominal · s re-run · ↑/↓ scroll · q quit"))
	return b.String()
}

func (m Model) renderSummary() string {
	if m.result == nil {
		return summaryBoxStyle.Render(labelStyle.Render("no result yet"))
	}

	mode := "nominal"
	total := m.result.Summary.NominalTotal
	byReform := m.result.Summary.NominalByReform
	if m.realTerms {
		mode = "real (reference-year pounds)"
		total = m.result.Summary.RealTotal
		byReform = m.result.Summary.RealByReform
	}

	lines := []string{
		fmt.Sprintf("%s %s  %s",
			labelStyle.Render("Lifetime total"),
			renderSigned(total),
			labelStyle.Render(mode)),
	}
	for i, key := range reformOrder {
		lines = append(lines, fmt.Sprintf("%s %-28s %s",
			labelStyle.Render(fmt.Sprintf("[%d]", i+1)),
			reformName(key),
			renderSigned(byReform.Get(key))))
	}
	return summaryBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderToggles() string {
	parts := make([]string, 0, len(reformOrder))
	for i, key := range reformOrder {
		label := fmt.Sprintf("%d:%s", i+1, reformName(key))
		if m.enabled[key] {
			parts = append(parts, toggleOnStyle.Render(label))
		} else {
			parts = append(parts, toggleOffStyle.Render(label))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(parts, "  "))
}

func reformName(key domain.ReformKey) string {
	for _, r := range domain.AllReforms() {
		if r.Key == key {
			return r.Name
		}
	}
	return string(key)
}

func renderSigned(v decimal.Decimal) string {
	s := output.FormatCurrency(v)
	if v.IsNegative() {
		return negativeStyle.Render(s)
	}
	return positiveStyle.Render(s)
}
