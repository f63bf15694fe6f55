// Package corr extracts and ranks correlated feature pairs from a
// symmetric correlation matrix.
package corr

import (
	"errors"
	"fmt"
	"math"
)

// symmetry tolerance; upstream accumulation can differ across the
// diagonal in the last few ulps.
const symmetryEps = 1e-9

var ErrInvalidShape = errors.New("correlation matrix has invalid shape")

// Matrix is a square, symmetric correlation matrix over an ordered set
// of numeric features. The feature order is canonical: pair extraction
// and heatmap rendering both follow it.
type Matrix struct {
	features []string
	grid     [][]float64
}

// NewMatrix validates and wraps an ordered feature list with its
// row-major coefficient grid. The grid must be square with one row per
// feature and symmetric within tolerance; NaN cells are allowed (a
// constant column yields undefined correlation) and exempt from the
// symmetry check.
func NewMatrix(features []string, grid [][]float64) (Matrix, error) {
	if len(grid) != len(features) {
		return Matrix{}, fmt.Errorf("%w: %d features but %d rows", ErrInvalidShape, len(features), len(grid))
	}
	for i, row := range grid {
		if len(row) != len(features) {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, i, len(row), len(features))
		}
	}
	for i := range grid {
		for j := i + 1; j < len(grid); j++ {
			a, b := grid[i][j], grid[j][i]
			if math.IsNaN(a) && math.IsNaN(b) {
				continue
			}
			if math.Abs(a-b) > symmetryEps {
				return Matrix{}, fmt.Errorf("%w: grid[%d][%d]=%v != grid[%d][%d]=%v", ErrInvalidShape, i, j, a, j, i, b)
			}
		}
	}
	return Matrix{features: features, grid: grid}, nil
}

// Features returns the feature names in canonical matrix order.
func (m Matrix) Features() []string { return m.features }

// Len returns the number of features.
func (m Matrix) Len() int { return len(m.features) }

// At returns the coefficient at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.grid[i][j] }

// HeatmapGrid returns the ordered label list and the full numeric grid
// for a drawing collaborator. A matrix with zero features yields empty
// results, never an error.
func (m Matrix) HeatmapGrid() ([]string, [][]float64) {
	if len(m.features) == 0 {
		return nil, nil
	}
	labels := make([]string, len(m.features))
	copy(labels, m.features)
	grid := make([][]float64, len(m.grid))
	for i, row := range m.grid {
		grid[i] = make([]float64, len(row))
		copy(grid[i], row)
	}
	return labels, grid
}
