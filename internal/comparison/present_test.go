package comparison

import (
	"strings"
	"testing"

	"github.com/iwvelando/salarymoon/pkg/testutil"
)

func TestSummary(t *testing.T) {
	result, err := Compare(testutil.ReferenceRateTable(t), ontarioInput())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	expected := "As an employee, your gross income is $80,000.00 with a net income of $45,272.00 after paying $34,728.00 in taxes. " +
		"As a freelancer, your gross income is $100,000.00 with a net income of $56,590.00 after paying $43,410.00 in taxes. " +
		"To match the employee's net income, a freelancer would need to work 1773.64 hours per year. " +
		affirmationMessage
	if got := result.Summary(); got != expected {
		t.Errorf("Summary() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestSummaryHasExactlyOneAssessment(t *testing.T) {
	table := testutil.ReferenceRateTable(t)
	for _, salary := range []float64{10000, 80000, 200000, 1e6} {
		in := ontarioInput()
		in.GrossSalary = salary
		result, err := Compare(table, in)
		if err != nil {
			t.Fatalf("Compare() error = %v", err)
		}

		summary := result.Summary()
		hasWarning := strings.Contains(summary, warningMessage)
		hasAffirmation := strings.Contains(summary, affirmationMessage)
		if hasWarning == hasAffirmation {
			t.Errorf("salary %v: expected exactly one assessment, warning=%v affirmation=%v", salary, hasWarning, hasAffirmation)
		}
		if hasWarning != result.Warning() {
			t.Errorf("salary %v: summary warning %v disagrees with Warning() %v", salary, hasWarning, result.Warning())
		}
	}
}

func TestTableHTML(t *testing.T) {
	result, err := Compare(testutil.ReferenceRateTable(t), ontarioInput())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	table, err := result.TableHTML()
	if err != nil {
		t.Fatalf("TableHTML() error = %v", err)
	}

	for _, want := range []string{
		"<tr><td>Gross Income</td><td>$80,000.00</td><td>$100,000.00</td></tr>",
		"<tr><td>Tax Rate</td><td>43.41%</td><td>43.41%</td></tr>",
		"<tr><td>Tax Paid</td><td>$34,728.00</td><td>$43,410.00</td></tr>",
		"<tr><td>Net Income</td><td>$45,272.00</td><td>$56,590.00</td></tr>",
		`<td colspan="2">1773.64 hours</td>`,
	} {
		if !strings.Contains(table, want) {
			t.Errorf("TableHTML() missing %q in:\n%s", want, table)
		}
	}
	if strings.Count(table, "<tr>") != 5 {
		t.Errorf("expected 5 rows, got %d", strings.Count(table, "<tr>"))
	}
}
