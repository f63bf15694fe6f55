// Package stats computes per-column summary statistics and the
// correlation matrix consumed by the analysis layer.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"cognia/internal/analysis/interpret"
	"cognia/internal/dataset"
)

// Summary holds descriptive statistics for one numeric column. Fields
// are NaN when the column has too few present values to define them.
type Summary struct {
	Column   string
	Count    int
	Missing  int
	Mean     float64
	Std      float64
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Skewness float64
	Kurtosis float64 // excess kurtosis, 0 for a normal distribution
}

// Describe summarizes every numeric column in frame order.
func Describe(frame *dataset.Frame) []Summary {
	cols := frame.NumericColumns()
	out := make([]Summary, 0, len(cols))
	for _, col := range cols {
		out = append(out, describeColumn(col))
	}
	return out
}

func describeColumn(col *dataset.Column) Summary {
	values := col.Values()
	s := Summary{
		Column:   col.Name,
		Count:    len(values),
		Missing:  len(col.Cells) - len(values),
		Mean:     nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan,
		Skewness: nan, Kurtosis: nan,
	}
	if len(values) == 0 {
		return s
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(values, nil)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q25 = stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	s.Q75 = stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	if len(values) >= 2 {
		s.Std = stat.StdDev(values, nil)
	}
	// skewness and kurtosis need enough samples for the bias-corrected
	// estimators; below that they stay NaN and the interpreter reports
	// them as undefined.
	if len(values) >= 3 && s.Std > 0 {
		s.Skewness = stat.Skew(values, nil)
	}
	if len(values) >= 4 && s.Std > 0 {
		s.Kurtosis = stat.ExKurtosis(values, nil)
	}
	return s
}

// Shapes extracts the skewness/kurtosis inputs for the distribution
// interpreter, one per numeric column in frame order.
func Shapes(frame *dataset.Frame) []interpret.ColumnShape {
	summaries := Describe(frame)
	out := make([]interpret.ColumnShape, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, interpret.ColumnShape{
			Column:   s.Column,
			Skewness: s.Skewness,
			Kurtosis: s.Kurtosis,
		})
	}
	return out
}

var nan = math.NaN()
