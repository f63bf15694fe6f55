package interpret

import "math"

// ColumnShape is the per-column input: skewness and excess kurtosis as
// supplied by the statistics layer, unrounded.
type ColumnShape struct {
	Column   string
	Skewness float64
	Kurtosis float64
}

// Interpretation carries display-rounded statistics plus the combined
// narrative for one column.
type Interpretation struct {
	Column    string  `json:"column"`
	Skewness  float64 `json:"skewness"`
	Kurtosis  float64 `json:"kurtosis"`
	Narrative string  `json:"narrative"`
}

// Interpret classifies each column's shape statistics, one output per
// input in the same order. Classification uses the unrounded values;
// the values carried in the output are rounded to three decimals for
// display only. Empty input yields empty output.
func Interpret(shapes []ColumnShape) []Interpretation {
	if len(shapes) == 0 {
		return nil
	}
	out := make([]Interpretation, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, Interpretation{
			Column:    s.Column,
			Skewness:  round3(s.Skewness),
			Kurtosis:  round3(s.Kurtosis),
			Narrative: classify(skewRules, s.Skewness) + " " + classify(kurtosisRules, s.Kurtosis),
		})
	}
	return out
}

func round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1000) / 1000
}
