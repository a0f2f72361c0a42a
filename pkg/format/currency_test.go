package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Zero", 0, "$0.00"},
		{"Fractional thousands", 1234.5, "$1,234.50"},
		{"Below a thousand", 999.99, "$999.99"},
		{"Exactly a thousand", 1000, "$1,000.00"},
		{"Millions", 1234567.891, "$1,234,567.89"},
		{"Salary", 80000, "$80,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Negative rounds to zero", -0.001, "$0.00"},
		{"Exact tie rounds to even", 0.125, "$0.12"},
		{"Cents", 0.07, "$0.07"},
		{"Positive infinity", math.Inf(1), "$Inf"},
		{"Negative infinity", math.Inf(-1), "-$Inf"},
		{"NaN", math.NaN(), "$NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.input); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := map[float64]string{
		0.4341: "43.41%",
		0.38:   "38.00%",
		0.4997: "49.97%",
		0:      "0.00%",
	}
	for input, expected := range tests {
		if got := Percent(input); got != expected {
			t.Errorf("Percent(%v) = %q, expected %q", input, got, expected)
		}
	}
}

func TestHours(t *testing.T) {
	if got := Hours(1773.64); got != "1773.64" {
		t.Errorf("Hours(1773.64) = %q", got)
	}
	if got := Hours(2000); got != "2000.00" {
		t.Errorf("Hours(2000) = %q", got)
	}
}
