// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/iwvelando/salarymoon/internal/config"
)

// ReferenceRateTable builds the rate table from the built-in reference jurisdictions.
func ReferenceRateTable(tb testing.TB) *config.RateTable {
	tb.Helper()
	table, err := config.DefaultConfiguration().RateTable()
	if err != nil {
		tb.Fatalf("failed to build reference rate table: %v", err)
	}
	return table
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// OntarioForm returns the form values of the reference Ontario comparison:
// salary 80000, 50/hour, 40 hours per week over 50 weeks.
func OntarioForm() url.Values {
	return url.Values{
		"province":       {"Ontario"},
		"salary":         {"80000"},
		"freelance_rate": {"50"},
		"hours_per_week": {"40"},
		"weeks_per_year": {"50"},
	}
}

// PostForm sends a form-encoded POST request through handler and records the response.
func PostForm(tb testing.TB, handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}
