// Package comparison computes the employee versus freelancer income
// comparison for a single set of inputs.
package comparison

import (
	"errors"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/salarymoon/internal/config"
)

// Form field names used in validation messages.
const (
	FieldJurisdiction = "province"
	FieldSalary       = "salary"
	FieldHourlyRate   = "freelance_rate"
	FieldHoursPerWeek = "hours_per_week"
	FieldWeeksPerYear = "weeks_per_year"
)

// RateSource resolves the tax rates of a jurisdiction.
type RateSource interface {
	Lookup(jurisdiction string) (config.Rates, bool)
}

// Input holds one set of comparison inputs.
type Input struct {
	Jurisdiction        string  `form:"province" validate:"required"`
	GrossSalary         float64 `form:"salary" validate:"gt=0"`
	FreelanceHourlyRate float64 `form:"freelance_rate" validate:"gt=0"`
	HoursPerWeek        float64 `form:"hours_per_week" validate:"gt=0"`
	WeeksPerYear        float64 `form:"weeks_per_year" validate:"gt=0"`
}

// Income is the gross, tax and net figures of one income mode.
type Income struct {
	Gross   float64 `json:"grossIncome"`
	TaxRate float64 `json:"taxRate"`
	TaxPaid float64 `json:"taxPaid"`
	Net     float64 `json:"netIncome"`
}

// Result is the immutable outcome of Compare.
type Result struct {
	Jurisdiction           string  `json:"jurisdiction"`
	Employee               Income  `json:"employee"`
	Freelancer             Income  `json:"freelancer"`
	RequiredFreelanceHours float64 `json:"requiredFreelanceHours"`
	AvailableHours         float64 `json:"availableHours"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Validate checks that the numeric inputs are finite and strictly positive
// and that a jurisdiction is named.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "required" {
				return newValidationError(fe.Field(), ReasonRequired)
			}
			return newValidationError(fe.Field(), ReasonNotPositive)
		}
		return err
	}

	numeric := []struct {
		field string
		value float64
	}{
		{FieldSalary, in.GrossSalary},
		{FieldHourlyRate, in.FreelanceHourlyRate},
		{FieldHoursPerWeek, in.HoursPerWeek},
		{FieldWeeksPerYear, in.WeeksPerYear},
	}
	for _, n := range numeric {
		if math.IsInf(n.value, 0) {
			return newValidationError(n.field, ReasonNotFinite)
		}
	}
	return nil
}

// Compare validates the input and computes the comparison. The breakeven
// hours are (employee net + freelance tax) / hourly rate, kept in that form.
// Inputs whose derived amounts overflow float64 are rejected.
func Compare(rates RateSource, in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	r, ok := rates.Lookup(in.Jurisdiction)
	if !ok {
		return Result{}, UnknownJurisdictionError(in.Jurisdiction)
	}

	freelanceGross := in.FreelanceHourlyRate * in.HoursPerWeek * in.WeeksPerYear

	employeeTax := in.GrossSalary * r.Employee
	freelanceTax := freelanceGross * r.Freelance

	employeeNet := in.GrossSalary - employeeTax
	freelanceNet := freelanceGross - freelanceTax

	requiredHours := (employeeNet + freelanceTax) / in.FreelanceHourlyRate
	availableHours := in.HoursPerWeek * in.WeeksPerYear

	derived := []struct {
		field string
		value float64
	}{
		{FieldHoursPerWeek, availableHours},
		{FieldHourlyRate, freelanceGross},
		{FieldSalary, employeeNet},
		{FieldSalary, requiredHours},
	}
	for _, d := range derived {
		if !isFinite(d.value) {
			return Result{}, newValidationError(d.field, ReasonOutOfRange)
		}
	}

	return Result{
		Jurisdiction: in.Jurisdiction,
		Employee: Income{
			Gross:   in.GrossSalary,
			TaxRate: r.Employee,
			TaxPaid: employeeTax,
			Net:     employeeNet,
		},
		Freelancer: Income{
			Gross:   freelanceGross,
			TaxRate: r.Freelance,
			TaxPaid: freelanceTax,
			Net:     freelanceNet,
		},
		RequiredFreelanceHours: requiredHours,
		AvailableHours:         availableHours,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Warning reports whether the freelancer would need more hours than available
// to match the employee's net income.
func (r Result) Warning() bool {
	return r.RequiredFreelanceHours > r.AvailableHours
}
