package config

import (
	"fmt"
	"sort"
)

// Rates holds the flat tax rate applied to each income mode.
type Rates struct {
	Employee  float64
	Freelance float64
}

// RateTable maps jurisdiction names to their tax rates. It is immutable after
// construction and safe for concurrent use.
type RateTable struct {
	rates map[string]Rates
	names []string
}

// NewRateTable builds a RateTable from configured jurisdictions.
func NewRateTable(jurisdictions []Jurisdiction) (*RateTable, error) {
	if len(jurisdictions) == 0 {
		return nil, fmt.Errorf("rate table requires at least one jurisdiction")
	}

	table := &RateTable{
		rates: make(map[string]Rates, len(jurisdictions)),
		names: make([]string, 0, len(jurisdictions)),
	}
	for _, j := range jurisdictions {
		if _, dup := table.rates[j.Name]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction %q", j.Name)
		}
		table.rates[j.Name] = j.Rates()
		table.names = append(table.names, j.Name)
	}
	sort.Strings(table.names)

	return table, nil
}

// RateTable builds the rate table for the configured jurisdictions.
func (c *Configuration) RateTable() (*RateTable, error) {
	return NewRateTable(c.Jurisdictions)
}

// Rates resolves the per-mode rates of a jurisdiction.
func (j Jurisdiction) Rates() Rates {
	r := Rates{Employee: j.Rate, Freelance: j.Rate}
	if j.EmployeeRate != nil {
		r.Employee = *j.EmployeeRate
	}
	if j.FreelanceRate != nil {
		r.Freelance = *j.FreelanceRate
	}
	return r
}

// Lookup returns the rates for a jurisdiction name. Names match exactly.
func (t *RateTable) Lookup(name string) (Rates, bool) {
	r, ok := t.rates[name]
	return r, ok
}

// Names returns the jurisdiction names in sorted order.
func (t *RateTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of jurisdictions in the table.
func (t *RateTable) Len() int {
	return len(t.names)
}
