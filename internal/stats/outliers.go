package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"cognia/internal/dataset"
)

// DefaultIQRMultiplier is the conventional Tukey fence width.
const DefaultIQRMultiplier = 1.5

// OutlierInfo reports IQR-fence outliers for one numeric column.
type OutlierInfo struct {
	Column     string
	Count      int
	Percent    float64
	LowerBound float64
	UpperBound float64
}

// Outliers flags values outside [Q1-k*IQR, Q3+k*IQR] for every numeric
// column. k <= 0 falls back to DefaultIQRMultiplier. Columns with no
// present values report zero outliers and NaN bounds.
func Outliers(frame *dataset.Frame, k float64) []OutlierInfo {
	if k <= 0 {
		k = DefaultIQRMultiplier
	}
	cols := frame.NumericColumns()
	out := make([]OutlierInfo, 0, len(cols))
	for _, col := range cols {
		out = append(out, columnOutliers(col, k))
	}
	return out
}

func columnOutliers(col *dataset.Column, k float64) OutlierInfo {
	info := OutlierInfo{Column: col.Name, LowerBound: nan, UpperBound: nan}
	values := col.Values()
	if len(values) == 0 {
		return info
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	iqr := q3 - q1
	info.LowerBound = q1 - k*iqr
	info.UpperBound = q3 + k*iqr
	for _, v := range values {
		if v < info.LowerBound || v > info.UpperBound {
			info.Count++
		}
	}
	info.Percent = float64(info.Count) / float64(len(values)) * 100
	return info
}
