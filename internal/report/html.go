package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"cognia/internal/analysis/visual"
)

// DefaultOutputFile is used when the caller gives no output path.
const DefaultOutputFile = "cognia_eda_report.html"

// WriteHTML renders the report and writes the self-contained document
// to path, creating parent directories as needed.
func WriteHTML(rep *Report, path string) (string, error) {
	if path == "" {
		path = DefaultOutputFile
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := RenderHTML(rep, f); err != nil {
		return "", err
	}
	return path, nil
}

// RenderHTML writes the report document to w.
func RenderHTML(rep *Report, w io.Writer) error {
	return reportTemplate.Execute(w, newView(rep))
}

// view augments the report with template-friendly fields.
type view struct {
	*Report
	HeatmapURI    template.URL
	CatChartJSON  template.JS
	NumChartJSON  template.JS
	FirstCatChart string
	FirstNumChart string
}

func newView(rep *Report) view {
	v := view{Report: rep}
	if !rep.Correlation.Heatmap.Empty() {
		heatmap := rep.Correlation.Heatmap
		v.HeatmapURI = template.URL(heatmap.DataURI())
	}
	v.CatChartJSON, v.FirstCatChart = chartMapJSON(rep.CategoryCharts)
	v.NumChartJSON, v.FirstNumChart = chartMapJSON(rep.NumericCharts)
	return v
}

func chartMapJSON(charts []Chart) (template.JS, string) {
	m := make(map[string]string, len(charts))
	first := ""
	for i, c := range charts {
		img := c.Image
		m[c.Column] = (&img).DataURI()
		if i == 0 {
			first = c.Column
		}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "{}", first
	}
	return template.JS(raw), first
}

// num formats a float for the report tables with at most three decimal
// places; undefined statistics display as "NaN" like the source data.
func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 0) {
		return "Inf"
	}
	return decimal.NewFromFloat(v).Round(3).String()
}

func pct(v float64) string {
	return num(v) + "%"
}

func title(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func dataURI(img visual.ImageResult) template.URL {
	return template.URL((&img).DataURI())
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"num":   num,
	"pct":   pct,
	"title": title,
	"uri":   dataURI,
}).Parse(reportHTML))
