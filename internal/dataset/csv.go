package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cognia/internal/pkg/convert"
)

// LoadCSV reads a delimited file into a Frame. The delimiter is
// auto-detected among ',', ';' and '\t' when delim is zero. A column is
// numeric when every present cell parses as a float and at least one
// cell is present; everything else is categorical.
func LoadCSV(path string, delim rune) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	if delim == 0 {
		delim, err = sniffDelimiter(f)
		if err != nil {
			return nil, err
		}
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, ErrEmptyDataset
	}

	ncol := len(header)
	cells := make([][]string, ncol)
	rows := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rows+2, err)
		}
		for i := 0; i < ncol; i++ {
			if i < len(rec) {
				cells[i] = append(cells[i], rec[i])
			} else {
				cells[i] = append(cells[i], "")
			}
		}
		rows++
	}

	frame := &Frame{Name: filepath.Base(path), RowsN: rows, Columns: make([]Column, 0, ncol)}
	for i, name := range header {
		frame.Columns = append(frame.Columns, buildColumn(strings.TrimSpace(name), cells[i]))
	}
	return frame, nil
}

func buildColumn(name string, cells []string) Column {
	missing := make([]bool, len(cells))
	numeric := true
	present := 0
	for i, cell := range cells {
		if isMissingToken(cell) {
			missing[i] = true
			continue
		}
		present++
		if _, ok := convert.ParseFloat(cell); !ok {
			numeric = false
		}
	}
	if present == 0 {
		numeric = false
	}
	col := Column{Name: name, Cells: cells, Missing: missing, Kind: KindCategorical}
	if numeric {
		col.Kind = KindNumeric
		col.Floats = make([]float64, len(cells))
		for i, cell := range cells {
			if missing[i] {
				col.Floats[i] = nan
				continue
			}
			v, _ := convert.ParseFloat(cell)
			col.Floats[i] = v
		}
	}
	return col
}

// sniffDelimiter inspects the first line and picks the candidate that
// splits it into the most fields. Rewinds the reader when done.
func sniffDelimiter(f *os.File) (rune, error) {
	br := bufio.NewReader(f)
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ',', err
	}
	best, bestCount := ',', 0
	for _, cand := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best, bestCount = cand, n
		}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return best, err
	}
	return best, nil
}
