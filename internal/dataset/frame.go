// Package dataset loads tabular files into a column-oriented frame
// with per-column type inference.
package dataset

import (
	"errors"
	"math"
	"strings"
)

var ErrEmptyDataset = errors.New("dataset has no columns")

var nan = math.NaN()

// Kind is the inferred type of a column.
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Column is one column of a frame. Raw cells are kept verbatim with a
// missing mask; numeric columns additionally carry parsed values where
// missing cells are NaN.
type Column struct {
	Name    string
	Kind    Kind
	Cells   []string
	Missing []bool
	Floats  []float64 // parsed values, NaN at missing cells; nil for categorical
}

// NonMissing returns the count of present cells.
func (c *Column) NonMissing() int {
	n := 0
	for _, m := range c.Missing {
		if !m {
			n++
		}
	}
	return n
}

// Values returns the present numeric values, skipping missing cells.
// Returns nil for categorical columns.
func (c *Column) Values() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Floats))
	for _, v := range c.Floats {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Unique returns the number of distinct present cell values.
func (c *Column) Unique() int {
	set := make(map[string]struct{}, len(c.Cells))
	for i, cell := range c.Cells {
		if c.Missing[i] {
			continue
		}
		set[cell] = struct{}{}
	}
	return len(set)
}

// ValueCounts returns the distinct present values with their counts,
// ordered descending by count; ties keep first-seen order.
func (c *Column) ValueCounts() []ValueCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i, cell := range c.Cells {
		if c.Missing[i] {
			continue
		}
		if _, ok := counts[cell]; !ok {
			order = append(order, cell)
		}
		counts[cell]++
	}
	out := make([]ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, ValueCount{Value: v, Count: counts[v]})
	}
	stableSortByCountDesc(out)
	return out
}

// ValueCount is one categorical level with its frequency.
type ValueCount struct {
	Value string
	Count int
}

func stableSortByCountDesc(vals []ValueCount) {
	// insertion sort keeps first-seen order among equal counts
	for i := 1; i < len(vals); i++ {
		for j := i; j > 0 && vals[j].Count > vals[j-1].Count; j-- {
			vals[j], vals[j-1] = vals[j-1], vals[j]
		}
	}
}

// Frame is an immutable column-oriented dataset.
type Frame struct {
	Name    string
	Columns []Column
	RowsN   int
}

// Rows returns the number of data rows.
func (f *Frame) Rows() int { return f.RowsN }

// NumericColumns returns the numeric columns in frame order.
func (f *Frame) NumericColumns() []*Column {
	var out []*Column
	for i := range f.Columns {
		if f.Columns[i].Kind == KindNumeric {
			out = append(out, &f.Columns[i])
		}
	}
	return out
}

// CategoricalColumns returns the categorical columns in frame order.
func (f *Frame) CategoricalColumns() []*Column {
	var out []*Column
	for i := range f.Columns {
		if f.Columns[i].Kind == KindCategorical {
			out = append(out, &f.Columns[i])
		}
	}
	return out
}

// Column returns the named column, or nil.
func (f *Frame) Column(name string) *Column {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i]
		}
	}
	return nil
}

// DuplicateRows counts rows whose full cell tuple appeared earlier.
func (f *Frame) DuplicateRows() int {
	if len(f.Columns) == 0 || f.RowsN == 0 {
		return 0
	}
	seen := make(map[string]struct{}, f.RowsN)
	dups := 0
	var b strings.Builder
	for r := 0; r < f.RowsN; r++ {
		b.Reset()
		for ci := range f.Columns {
			b.WriteString(f.Columns[ci].Cells[r])
			b.WriteByte(0x1f)
		}
		key := b.String()
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}

// missing value tokens, compared case-insensitively after trimming.
var missingTokens = map[string]struct{}{
	"": {}, "na": {}, "n/a": {}, "null": {}, "nan": {}, "none": {}, "-": {},
}

func isMissingToken(cell string) bool {
	_, ok := missingTokens[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}
