// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/salarymoon/internal/comparison"
	"github.com/iwvelando/salarymoon/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result comparison.Result) error {
	rows := []struct {
		label                string
		employee, freelancer float64
	}{
		{"Gross Income", result.Employee.Gross, result.Freelancer.Gross},
		{"Tax Paid", result.Employee.TaxPaid, result.Freelancer.TaxPaid},
		{"Net Income", result.Employee.Net, result.Freelancer.Net},
	}

	if _, err := fmt.Fprintf(w, "--- Results for %s ---\n", result.Jurisdiction); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-12s | %15s | %15s\n", "", "Employee", "Freelancer"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-12s | %15s | %15s\n", "Tax Rate",
		format.Percent(result.Employee.TaxRate), format.Percent(result.Freelancer.TaxRate)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-12s | %15s | %15s\n", row.label,
			format.Currency(row.employee), format.Currency(row.freelancer)); err != nil {
			return err
		}
	}
	p := message.NewPrinter(language.English)
	// Hours are grouped by the locale printer; money goes through format.Currency
	// so it matches the HTTP table to the cent.
	if _, err := p.Fprintf(w, "Required freelance hours: %.2f of %.2f available\n",
		result.RequiredFreelanceHours, result.AvailableHours); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, result.Assessment())
	return err
}

// CsvFormat writes the comparison in comma-separated value format.
func CsvFormat(w io.Writer, result comparison.Result) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"metric", "employee", "freelancer"},
		{"gross_income", money(result.Employee.Gross), money(result.Freelancer.Gross)},
		{"tax_rate", rate(result.Employee.TaxRate), rate(result.Freelancer.TaxRate)},
		{"tax_paid", money(result.Employee.TaxPaid), money(result.Freelancer.TaxPaid)},
		{"net_income", money(result.Employee.Net), money(result.Freelancer.Net)},
		{"required_freelance_hours", "", format.Hours(result.RequiredFreelanceHours)},
		{"available_hours", "", format.Hours(result.AvailableHours)},
		{"warning", "", strconv.FormatBool(result.Warning())},
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
