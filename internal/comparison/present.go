package comparison

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/iwvelando/salarymoon/pkg/format"
)

const (
	warningMessage     = "Warning: The freelancer would need to work more hours than currently specified to match the employee's net income."
	affirmationMessage = "The freelancer can match or exceed the employee's net income within the specified working hours."
)

var tableTemplate = template.Must(template.New("table").Parse(`
<tr><td>Gross Income</td><td>{{.EmployeeGross}}</td><td>{{.FreelanceGross}}</td></tr>
<tr><td>Tax Rate</td><td>{{.EmployeeRate}}</td><td>{{.FreelanceRate}}</td></tr>
<tr><td>Tax Paid</td><td>{{.EmployeeTax}}</td><td>{{.FreelanceTax}}</td></tr>
<tr><td>Net Income</td><td>{{.EmployeeNet}}</td><td>{{.FreelanceNet}}</td></tr>
<tr><td>Required Hours to Match Employee Net Income</td><td colspan="2">{{.RequiredHours}} hours</td></tr>
`))

// Assessment returns the warning when the freelancer cannot reach the
// employee's net income within the available hours, and the affirmation otherwise.
func (r Result) Assessment() string {
	if r.Warning() {
		return warningMessage
	}
	return affirmationMessage
}

// Summary describes both income modes, the breakeven hours and the assessment.
func (r Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "As an employee, your gross income is %s with a net income of %s after paying %s in taxes. ",
		format.Currency(r.Employee.Gross), format.Currency(r.Employee.Net), format.Currency(r.Employee.TaxPaid))
	fmt.Fprintf(&b, "As a freelancer, your gross income is %s with a net income of %s after paying %s in taxes. ",
		format.Currency(r.Freelancer.Gross), format.Currency(r.Freelancer.Net), format.Currency(r.Freelancer.TaxPaid))
	fmt.Fprintf(&b, "To match the employee's net income, a freelancer would need to work %s hours per year.",
		format.Hours(r.RequiredFreelanceHours))
	b.WriteString(" ")
	b.WriteString(r.Assessment())
	return b.String()
}

// TableHTML renders the comparison as HTML table rows: gross income, tax
// rate, tax paid, net income and the required hours.
func (r Result) TableHTML() (string, error) {
	data := struct {
		EmployeeGross, FreelanceGross string
		EmployeeRate, FreelanceRate   string
		EmployeeTax, FreelanceTax     string
		EmployeeNet, FreelanceNet     string
		RequiredHours                 string
	}{
		EmployeeGross:  format.Currency(r.Employee.Gross),
		FreelanceGross: format.Currency(r.Freelancer.Gross),
		EmployeeRate:   format.Percent(r.Employee.TaxRate),
		FreelanceRate:  format.Percent(r.Freelancer.TaxRate),
		EmployeeTax:    format.Currency(r.Employee.TaxPaid),
		FreelanceTax:   format.Currency(r.Freelancer.TaxPaid),
		EmployeeNet:    format.Currency(r.Employee.Net),
		FreelanceNet:   format.Currency(r.Freelancer.Net),
		RequiredHours:  format.Hours(r.RequiredFreelanceHours),
	}

	var b strings.Builder
	if err := tableTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render results table: %w", err)
	}
	return b.String(), nil
}
