package dataset

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"cognia/internal/pkg/convert"
)

// LoadJSON reads a dataset from a JSON document. Accepted shapes: a
// top-level array of flat records, an object with a "data" or
// "records" array, or newline-delimited JSON objects. Column order is
// first-seen key order across records; records missing a key get a
// missing cell.
func LoadJSON(path string) (*Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	records, err := jsonRecords(raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	var order []string
	index := map[string]int{}
	for _, rec := range records {
		rec.ForEach(func(key, _ gjson.Result) bool {
			k := key.String()
			if _, ok := index[k]; !ok {
				index[k] = len(order)
				order = append(order, k)
			}
			return true
		})
	}
	if len(order) == 0 {
		return nil, ErrEmptyDataset
	}

	cells := make([][]string, len(order))
	for i := range cells {
		cells[i] = make([]string, len(records))
	}
	for r, rec := range records {
		for i, key := range order {
			v := rec.Get(escapeKey(key))
			switch {
			case !v.Exists() || v.Type == gjson.Null:
				cells[i][r] = ""
			case v.Type == gjson.Number, v.Type == gjson.True, v.Type == gjson.False:
				cells[i][r] = numericCell(v)
			default:
				cells[i][r] = v.String()
			}
		}
	}

	frame := &Frame{Name: filepath.Base(path), RowsN: len(records), Columns: make([]Column, 0, len(order))}
	for i, name := range order {
		frame.Columns = append(frame.Columns, buildColumn(name, cells[i]))
	}
	return frame, nil
}

func jsonRecords(raw []byte) ([]gjson.Result, error) {
	doc := gjson.ParseBytes(raw)
	switch {
	case doc.IsArray():
		return doc.Array(), nil
	case doc.IsObject():
		for _, key := range []string{"data", "records", "rows"} {
			if arr := doc.Get(key); arr.IsArray() {
				return arr.Array(), nil
			}
		}
		return nil, fmt.Errorf("json dataset: object has no data/records/rows array")
	}
	// fall back to newline-delimited objects
	var records []gjson.Result
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		obj := gjson.Parse(line)
		if !obj.IsObject() {
			return nil, fmt.Errorf("json dataset: line is not an object: %.40s", line)
		}
		records = append(records, obj)
	}
	return records, nil
}

// numericCell canonicalizes typed JSON scalars so type inference sees
// one spelling for 1, 1.0 and 1e0; booleans load as 0/1 indicators.
func numericCell(v gjson.Result) string {
	f := convert.ToFloat64(v.Value())
	if math.IsNaN(f) {
		return v.String()
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// escapeKey guards gjson path syntax in raw column names.
func escapeKey(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "#", `\#`, "@", `\@`)
	return r.Replace(key)
}

// Load dispatches on file extension: .json/.ndjson/.jsonl go through
// the JSON loader, everything else through the CSV loader.
func Load(path string) (*Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".ndjson", ".jsonl":
		return LoadJSON(path)
	default:
		return LoadCSV(path, 0)
	}
}
