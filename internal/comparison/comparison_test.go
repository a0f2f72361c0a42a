package comparison

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/salarymoon/internal/config"
	"github.com/iwvelando/salarymoon/pkg/testutil"
)

const tolerance = 1e-6

func ontarioInput() Input {
	return Input{
		Jurisdiction:        "Ontario",
		GrossSalary:         80000,
		FreelanceHourlyRate: 50,
		HoursPerWeek:        40,
		WeeksPerYear:        50,
	}
}

func TestCompareOntarioReference(t *testing.T) {
	result, err := Compare(testutil.ReferenceRateTable(t), ontarioInput())
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"freelance gross", result.Freelancer.Gross, 100000},
		{"employee gross", result.Employee.Gross, 80000},
		{"employee tax rate", result.Employee.TaxRate, 0.4341},
		{"freelance tax rate", result.Freelancer.TaxRate, 0.4341},
		{"employee tax", result.Employee.TaxPaid, 34728},
		{"employee net", result.Employee.Net, 45272},
		{"freelance tax", result.Freelancer.TaxPaid, 43410},
		{"freelance net", result.Freelancer.Net, 56590},
		{"required hours", result.RequiredFreelanceHours, 1773.64},
		{"available hours", result.AvailableHours, 2000},
	}
	for _, c := range checks {
		if !testutil.WithinTolerance(c.got, c.expected, tolerance) {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}

	if result.Warning() {
		t.Error("expected no warning when 1773.64 hours fit in 2000 available hours")
	}
	if result.Jurisdiction != "Ontario" {
		t.Errorf("expected jurisdiction Ontario, got %q", result.Jurisdiction)
	}
}

func TestCompareNetIncomeIdentity(t *testing.T) {
	table := testutil.ReferenceRateTable(t)
	inputs := []Input{
		{Jurisdiction: "Alberta", GrossSalary: 55000, FreelanceHourlyRate: 35.5, HoursPerWeek: 37.5, WeeksPerYear: 48},
		{Jurisdiction: "Quebec", GrossSalary: 123456.78, FreelanceHourlyRate: 95, HoursPerWeek: 20, WeeksPerYear: 52},
		{Jurisdiction: "Nova Scotia", GrossSalary: 1, FreelanceHourlyRate: 0.5, HoursPerWeek: 1, WeeksPerYear: 1},
		{Jurisdiction: "British Columbia", GrossSalary: 250000, FreelanceHourlyRate: 200, HoursPerWeek: 60, WeeksPerYear: 50},
	}

	for _, in := range inputs {
		t.Run(in.Jurisdiction, func(t *testing.T) {
			result, err := Compare(table, in)
			if err != nil {
				t.Fatalf("Compare() error = %v", err)
			}
			rates, _ := table.Lookup(in.Jurisdiction)

			freelanceGross := in.FreelanceHourlyRate * in.HoursPerWeek * in.WeeksPerYear
			if result.Freelancer.Gross != freelanceGross {
				t.Errorf("freelance gross = %v, expected %v", result.Freelancer.Gross, freelanceGross)
			}

			wantEmployeeNet := in.GrossSalary * (1 - rates.Employee)
			if !testutil.WithinTolerance(result.Employee.Net, wantEmployeeNet, tolerance*math.Max(1, in.GrossSalary)) {
				t.Errorf("employee net = %v, expected %v", result.Employee.Net, wantEmployeeNet)
			}
			wantFreelanceNet := freelanceGross * (1 - rates.Freelance)
			if !testutil.WithinTolerance(result.Freelancer.Net, wantFreelanceNet, tolerance*math.Max(1, freelanceGross)) {
				t.Errorf("freelance net = %v, expected %v", result.Freelancer.Net, wantFreelanceNet)
			}

			wantHours := (result.Employee.Net + result.Freelancer.TaxPaid) / in.FreelanceHourlyRate
			if result.RequiredFreelanceHours != wantHours {
				t.Errorf("required hours = %v, expected %v", result.RequiredFreelanceHours, wantHours)
			}
			if result.Warning() != (wantHours > in.HoursPerWeek*in.WeeksPerYear) {
				t.Errorf("warning = %v for required %v and available %v", result.Warning(), wantHours, in.HoursPerWeek*in.WeeksPerYear)
			}
		})
	}
}

func TestCompareUsesPerModeRates(t *testing.T) {
	employee, freelance := 0.30, 0.20
	table, err := config.NewRateTable([]config.Jurisdiction{
		{Name: "Split", Rate: 0.5, EmployeeRate: &employee, FreelanceRate: &freelance},
	})
	if err != nil {
		t.Fatalf("NewRateTable() error = %v", err)
	}

	in := Input{Jurisdiction: "Split", GrossSalary: 100000, FreelanceHourlyRate: 100, HoursPerWeek: 40, WeeksPerYear: 50}
	result, err := Compare(table, in)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if !testutil.WithinTolerance(result.Employee.TaxPaid, 30000, tolerance) {
		t.Errorf("employee tax = %v, expected 30000", result.Employee.TaxPaid)
	}
	if !testutil.WithinTolerance(result.Freelancer.TaxPaid, 40000, tolerance) {
		t.Errorf("freelance tax = %v, expected 40000", result.Freelancer.TaxPaid)
	}
	// (70000 + 40000) / 100
	if !testutil.WithinTolerance(result.RequiredFreelanceHours, 1100, tolerance) {
		t.Errorf("required hours = %v, expected 1100", result.RequiredFreelanceHours)
	}
}

func TestCompareWarning(t *testing.T) {
	in := ontarioInput()
	in.GrossSalary = 200000

	result, err := Compare(testutil.ReferenceRateTable(t), in)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	// (113180 + 43410) / 50
	if !testutil.WithinTolerance(result.RequiredFreelanceHours, 3131.8, tolerance) {
		t.Errorf("required hours = %v, expected 3131.8", result.RequiredFreelanceHours)
	}
	if !result.Warning() {
		t.Fatal("expected warning when required hours exceed available hours")
	}
	if result.Assessment() != warningMessage {
		t.Errorf("unexpected assessment %q", result.Assessment())
	}
}

func TestCompareValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
		reason string
	}{
		{"Zero salary", func(in *Input) { in.GrossSalary = 0 }, FieldSalary, ReasonNotPositive},
		{"Negative salary", func(in *Input) { in.GrossSalary = -1 }, FieldSalary, ReasonNotPositive},
		{"Zero hourly rate", func(in *Input) { in.FreelanceHourlyRate = 0 }, FieldHourlyRate, ReasonNotPositive},
		{"Negative hours", func(in *Input) { in.HoursPerWeek = -40 }, FieldHoursPerWeek, ReasonNotPositive},
		{"Zero weeks", func(in *Input) { in.WeeksPerYear = 0 }, FieldWeeksPerYear, ReasonNotPositive},
		{"NaN salary", func(in *Input) { in.GrossSalary = math.NaN() }, FieldSalary, ReasonNotPositive},
		{"Infinite weeks", func(in *Input) { in.WeeksPerYear = math.Inf(1) }, FieldWeeksPerYear, ReasonNotFinite},
		{"Available hours overflow", func(in *Input) { in.HoursPerWeek, in.WeeksPerYear = 1e300, 1e300 }, FieldHoursPerWeek, ReasonOutOfRange},
		{"Freelance gross overflow", func(in *Input) { in.FreelanceHourlyRate, in.HoursPerWeek = 1e300, 1e300 }, FieldHourlyRate, ReasonOutOfRange},
		{"Required hours overflow", func(in *Input) { in.GrossSalary, in.FreelanceHourlyRate = 1e308, 1e-300 }, FieldSalary, ReasonOutOfRange},
		{"Missing jurisdiction", func(in *Input) { in.Jurisdiction = "" }, FieldJurisdiction, ReasonRequired},
		{"Unknown jurisdiction", func(in *Input) { in.Jurisdiction = "Nunavut" }, FieldJurisdiction, `"Nunavut" is not a known jurisdiction`},
	}

	table := testutil.ReferenceRateTable(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ontarioInput()
			tt.mutate(&in)

			_, err := Compare(table, in)
			if err == nil {
				t.Fatal("expected validation error but got nil")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, ve.Field)
			}
			if ve.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, ve.Reason)
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError() = false")
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := newValidationError(FieldSalary, ReasonNotPositive)
	if err.Error() != "salary must be greater than zero" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if (&ValidationError{Reason: "bad input"}).Error() != "bad input" {
		t.Error("expected bare reason when field is empty")
	}
	if IsValidationError(errors.New("other")) {
		t.Error("IsValidationError() = true for a plain error")
	}
	if !strings.Contains(UnknownJurisdictionError("Nunavut").Error(), "province") {
		t.Error("expected unknown jurisdiction message to name the province field")
	}
}
