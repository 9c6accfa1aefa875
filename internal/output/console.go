package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ukfiscal/lifetax/internal/domain"
)

// ConsoleFormatter renders the lifetime summary plus a condensed year
// table for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintln(&buf, "LIFETIME TAX-BENEFIT REFORM IMPACT")
	fmt.Fprintln(&buf, strings.Repeat("=", 78))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "LIFETIME TOTALS")
	fmt.Fprintln(&buf, "---------------")
	fmt.Fprintf(&buf, "Nominal: %s\n", FormatCurrency(result.Summary.NominalTotal))
	fmt.Fprintf(&buf, "Real:    %s (reference-year pounds)\n", FormatCurrency(result.Summary.RealTotal))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "BY REFORM")
	fmt.Fprintln(&buf, "---------")
	for _, reform := range domain.AllReforms() {
		nominal := result.Summary.NominalByReform.Get(reform.Key)
		real := result.Summary.RealByReform.Get(reform.Key)
		fmt.Fprintf(&buf, "%-32s %14s nominal %14s real\n",
			reform.Name, FormatCurrency(nominal), FormatCurrency(real))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEAR BY YEAR")
	fmt.Fprintln(&buf, strings.Repeat("-", 78))
	fmt.Fprintf(&buf, "%4s %5s %14s %12s %10s %12s %12s\n",
		"Age", "Year", "Gross", "IncomeTax", "NICs", "LoanRepay", "ImpactTotal")
	for _, row := range result.Rows {
		fmt.Fprintf(&buf, "%4d %5d %14s %12s %10s %12s %12s\n",
			row.Age, row.Year,
			row.GrossIncome.StringFixed(2),
			row.IncomeTax.StringFixed(2),
			row.NationalInsurance.StringFixed(2),
			row.StudentLoanPayment.StringFixed(2),
			row.ImpactSet.Total().StringFixed(2))
	}

	return buf.Bytes(), nil
}

// FormatCurrency formats a decimal as pounds sterling.
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-£" + amount.Abs().StringFixed(2)
	}
	return "£" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal fraction as a percentage.
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
