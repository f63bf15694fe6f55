// Package interpret classifies distribution shape statistics into
// natural-language narratives.
package interpret

import "math"

// rule pairs a predicate with the sentence emitted when it matches.
// Rules are evaluated top to bottom; the first match wins, so the
// policy lives in the table order rather than in control flow.
type rule struct {
	match func(v float64) bool
	text  string
}

var skewRules = []rule{
	{
		match: func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) },
		text:  "Skewness is undefined (insufficient data or zero variance).",
	},
	{
		match: func(v float64) bool { return math.Abs(v) < 0.5 },
		text:  "The distribution is approximately symmetric.",
	},
	{
		match: func(v float64) bool { return v > 0 },
		text:  "The distribution is right-skewed, indicating the presence of higher-value outliers.",
	},
	{
		match: func(v float64) bool { return true },
		text:  "The distribution is left-skewed, indicating the presence of lower-value outliers.",
	},
}

var kurtosisRules = []rule{
	{
		match: func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) },
		text:  "Kurtosis is undefined (insufficient data or zero variance).",
	},
	{
		match: func(v float64) bool { return math.Abs(v) < 1 },
		text:  "The distribution has moderate tails, similar to a normal distribution.",
	},
	{
		match: func(v float64) bool { return v > 0 },
		text:  "The distribution has heavy tails, suggesting a higher likelihood of extreme values.",
	},
	{
		match: func(v float64) bool { return true },
		text:  "The distribution has light tails, suggesting fewer extreme values.",
	},
}

func classify(rules []rule, v float64) string {
	for _, r := range rules {
		if r.match(v) {
			return r.text
		}
	}
	return ""
}
