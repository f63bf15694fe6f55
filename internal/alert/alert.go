// Package alert aggregates data-quality warnings for a report.
package alert

import (
	"fmt"

	"cognia/internal/dataset"
	"cognia/internal/stats"
)

// Limits are the thresholds above which a rule fires.
type Limits struct {
	MissingPercent    float64 // per-column missing %, default 30
	OutlierPercent    float64 // per-column outlier %, default 5
	CategoricalLevels int     // distinct levels in a categorical column, default 50
}

// DefaultLimits returns the thresholds used when config leaves a limit
// unset.
func DefaultLimits() Limits {
	return Limits{MissingPercent: 30, OutlierPercent: 5, CategoricalLevels: 50}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MissingPercent <= 0 {
		l.MissingPercent = d.MissingPercent
	}
	if l.OutlierPercent <= 0 {
		l.OutlierPercent = d.OutlierPercent
	}
	if l.CategoricalLevels <= 0 {
		l.CategoricalLevels = d.CategoricalLevels
	}
	return l
}

// Input bundles everything the rules inspect.
type Input struct {
	Frame     *dataset.Frame
	Summaries []stats.Summary
	Outliers  []stats.OutlierInfo
	Missing   []stats.MissingInfo
	Limits    Limits
}

// rules are evaluated in order; each returns zero or more alert
// sentences.
var rules = []func(Input) []string{
	missingRule,
	constantRule,
	cardinalityRule,
	outlierRule,
	duplicateRule,
}

// Generate runs every rule and returns the collected alerts. An empty
// result means no data-quality issue was detected.
func Generate(in Input) []string {
	in.Limits = in.Limits.withDefaults()
	var out []string
	for _, rule := range rules {
		out = append(out, rule(in)...)
	}
	return out
}

func missingRule(in Input) []string {
	var out []string
	for _, m := range in.Missing {
		if m.Percent > in.Limits.MissingPercent {
			out = append(out, fmt.Sprintf("Column %q is missing %.1f%% of its values (limit %.0f%%).",
				m.Column, m.Percent, in.Limits.MissingPercent))
		}
	}
	return out
}

func constantRule(in Input) []string {
	var out []string
	for _, s := range in.Summaries {
		if s.Count > 1 && s.Std == 0 {
			out = append(out, fmt.Sprintf("Column %q is constant; it carries no information.", s.Column))
		}
	}
	return out
}

func cardinalityRule(in Input) []string {
	if in.Frame == nil {
		return nil
	}
	var out []string
	for _, col := range in.Frame.CategoricalColumns() {
		if u := col.Unique(); u > in.Limits.CategoricalLevels {
			out = append(out, fmt.Sprintf("Categorical column %q has %d distinct levels; consider grouping rare values.",
				col.Name, u))
		}
	}
	return out
}

func outlierRule(in Input) []string {
	var out []string
	for _, o := range in.Outliers {
		if o.Percent > in.Limits.OutlierPercent {
			out = append(out, fmt.Sprintf("Column %q has %.1f%% outliers beyond the IQR fence (limit %.0f%%).",
				o.Column, o.Percent, in.Limits.OutlierPercent))
		}
	}
	return out
}

func duplicateRule(in Input) []string {
	if in.Frame == nil {
		return nil
	}
	if d := in.Frame.DuplicateRows(); d > 0 {
		return []string{fmt.Sprintf("Dataset contains %d duplicate rows.", d)}
	}
	return nil
}
