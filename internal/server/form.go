package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/iwvelando/salarymoon/internal/comparison"
)

// parseInput reads the evaluate form. A missing or blank field and an
// unparsable field are reported separately; positivity is left to
// comparison.Input.Validate.
func parseInput(values url.Values) (comparison.Input, error) {
	var in comparison.Input

	province := strings.TrimSpace(values.Get(comparison.FieldJurisdiction))
	if province == "" {
		return in, &comparison.ValidationError{Field: comparison.FieldJurisdiction, Reason: comparison.ReasonRequired}
	}
	in.Jurisdiction = province

	fields := []struct {
		name string
		dest *float64
	}{
		{comparison.FieldSalary, &in.GrossSalary},
		{comparison.FieldHourlyRate, &in.FreelanceHourlyRate},
		{comparison.FieldHoursPerWeek, &in.HoursPerWeek},
		{comparison.FieldWeeksPerYear, &in.WeeksPerYear},
	}
	for _, f := range fields {
		v, err := parseNumber(values, f.name)
		if err != nil {
			return in, err
		}
		*f.dest = v
	}

	return in, nil
}

func parseNumber(values url.Values, field string) (float64, error) {
	raw := strings.TrimSpace(values.Get(field))
	if raw == "" {
		return 0, &comparison.ValidationError{Field: field, Reason: comparison.ReasonRequired}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &comparison.ValidationError{Field: field, Reason: comparison.ReasonNotANumber}
	}
	return v, nil
}
