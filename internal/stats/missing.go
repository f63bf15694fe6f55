package stats

import "cognia/internal/dataset"

// MissingInfo reports absent cells for one column.
type MissingInfo struct {
	Column  string
	Missing int
	Percent float64
}

// MissingTable reports missing cell counts for every column in frame
// order. Percent is 0 for an empty frame.
func MissingTable(frame *dataset.Frame) []MissingInfo {
	out := make([]MissingInfo, 0, len(frame.Columns))
	for i := range frame.Columns {
		col := &frame.Columns[i]
		missing := len(col.Cells) - col.NonMissing()
		pct := 0.0
		if frame.Rows() > 0 {
			pct = float64(missing) / float64(frame.Rows()) * 100
		}
		out = append(out, MissingInfo{Column: col.Name, Missing: missing, Percent: pct})
	}
	return out
}
