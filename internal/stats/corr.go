package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"cognia/internal/analysis/corr"
	"cognia/internal/dataset"
)

// Correlation computes the Pearson correlation matrix over the frame's
// numeric columns. Rows missing in either column of a pair are dropped
// for that pair (pairwise deletion). The diagonal is 1.0; a pair with
// fewer than two shared observations or a constant column yields NaN.
// A frame with no numeric columns yields an empty matrix.
func Correlation(frame *dataset.Frame) (corr.Matrix, error) {
	cols := frame.NumericColumns()
	n := len(cols)
	features := make([]string, n)
	for i, c := range cols {
		features[i] = c.Name
	}
	grid := make([][]float64, n)
	for i := range grid {
		grid[i] = make([]float64, n)
		grid[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pearson(cols[i].Floats, cols[j].Floats)
			grid[i][j] = r
			grid[j][i] = r
		}
	}
	return corr.NewMatrix(features, grid)
}

func pearson(x, y []float64) float64 {
	px := make([]float64, 0, len(x))
	py := make([]float64, 0, len(y))
	for k := range x {
		if math.IsNaN(x[k]) || math.IsNaN(y[k]) {
			continue
		}
		px = append(px, x[k])
		py = append(py, y[k])
	}
	if len(px) < 2 {
		return math.NaN()
	}
	return stat.Correlation(px, py, nil)
}
