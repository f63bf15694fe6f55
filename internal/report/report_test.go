package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognia/internal/analysis/corr"
	"cognia/internal/analysis/visual/visualtest"
	"cognia/internal/dataset"
)

func loadFrame(t *testing.T, csv string) *dataset.Frame {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	frame, err := dataset.LoadCSV(path, 0)
	require.NoError(t, err)
	return frame
}

const smallCSV = "price,qty,city\n10,1,Paris\n20,2,Lyon\n30,3,Paris\n40,4,Nice\n55,5,Paris\n"

func TestBuild_SmallDatasetInlineHeatmap(t *testing.T) {
	frame := loadFrame(t, smallCSV)
	stub := visualtest.NewStubRenderer()

	rep, err := Build(context.Background(), frame, Options{}, stub)
	require.NoError(t, err)

	assert.Equal(t, 5, rep.Rows)
	assert.Equal(t, 3, rep.Columns)
	assert.True(t, rep.Correlation.Inline)
	assert.Empty(t, rep.Correlation.Pairs)
	assert.False(t, rep.Correlation.Heatmap.Empty())
	assert.Len(t, rep.NumericCharts, 2)
	assert.Len(t, rep.CategoryCharts, 1)
	assert.False(t, rep.ChartsSkipped)

	// heatmap got the full grid in matrix order
	assert.Equal(t, []string{"price", "qty"}, stub.HeatmapLabels())
}

func TestBuild_WideDatasetTopPairs(t *testing.T) {
	var header []string
	var row1, row2, row3, row4 []string
	for i := 0; i < 12; i++ {
		header = append(header, fmt.Sprintf("f%d", i))
		row1 = append(row1, fmt.Sprintf("%d", i+1))
		row2 = append(row2, fmt.Sprintf("%d", 2*(i+1)))
		row3 = append(row3, fmt.Sprintf("%d", 3*(i+1)))
		row4 = append(row4, fmt.Sprintf("%d", 5*(i+1)+i*i))
	}
	csv := strings.Join(header, ",") + "\n" +
		strings.Join(row1, ",") + "\n" + strings.Join(row2, ",") + "\n" +
		strings.Join(row3, ",") + "\n" + strings.Join(row4, ",") + "\n"
	frame := loadFrame(t, csv)
	stub := visualtest.NewStubRenderer()

	rep, err := Build(context.Background(), frame, Options{ShowFullCorrelation: true}, stub)
	require.NoError(t, err)

	assert.False(t, rep.Correlation.Inline)
	assert.True(t, rep.Correlation.Collapsible)
	assert.NotEmpty(t, rep.Correlation.Pairs)
	assert.LessOrEqual(t, len(rep.Correlation.Pairs), 10)
	for i := 1; i < len(rep.Correlation.Pairs); i++ {
		assert.GreaterOrEqual(t, rep.Correlation.Pairs[i-1].Strength, rep.Correlation.Pairs[i].Strength)
	}
	assert.False(t, rep.Correlation.Heatmap.Empty())
}

func TestBuild_WideDatasetWithoutFullCorrelation(t *testing.T) {
	var header, row []string
	for i := 0; i < 11; i++ {
		header = append(header, fmt.Sprintf("c%d", i))
	}
	csv := strings.Join(header, ",") + "\n"
	for r := 0; r < 4; r++ {
		row = row[:0]
		for i := 0; i < 11; i++ {
			row = append(row, fmt.Sprintf("%d", (r+1)*(i+2)))
		}
		csv += strings.Join(row, ",") + "\n"
	}
	frame := loadFrame(t, csv)
	stub := visualtest.NewStubRenderer()

	rep, err := Build(context.Background(), frame, Options{}, stub)
	require.NoError(t, err)
	assert.False(t, rep.Correlation.Inline)
	assert.False(t, rep.Correlation.Collapsible)
	// heatmap not rendered when neither inline nor collapsible
	assert.True(t, rep.Correlation.Heatmap.Empty())
}

func TestBuild_NilRendererDegrades(t *testing.T) {
	frame := loadFrame(t, smallCSV)
	rep, err := Build(context.Background(), frame, Options{}, nil)
	require.NoError(t, err)
	assert.True(t, rep.ChartsSkipped)
	assert.NotEmpty(t, rep.Summaries)
	assert.NotEmpty(t, rep.Interpretations)
}

func TestBuild_RendererFailureDegrades(t *testing.T) {
	frame := loadFrame(t, smallCSV)
	stub := visualtest.NewStubRenderer()
	stub.Fail = true

	rep, err := Build(context.Background(), frame, Options{}, stub)
	require.NoError(t, err)
	assert.True(t, rep.ChartsSkipped)
	assert.Empty(t, rep.NumericCharts)
	assert.True(t, rep.Correlation.Heatmap.Empty())
}

func TestRenderHTML_Sections(t *testing.T) {
	frame := loadFrame(t, smallCSV)
	stub := visualtest.NewStubRenderer()
	rep, err := Build(context.Background(), frame, Options{}, stub)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(rep, &buf))
	html := buf.String()

	assert.Contains(t, html, "Dataset Overview")
	assert.Contains(t, html, "Distribution Interpretation")
	assert.Contains(t, html, "Outlier Analysis")
	assert.Contains(t, html, "Correlation Analysis")
	assert.Contains(t, html, "data:image/png;base64,")
	assert.Contains(t, html, "No major data quality issues detected")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderHTML_AlertsListed(t *testing.T) {
	frame := loadFrame(t, "v\n1\n1\n1\n1\n")
	rep, err := Build(context.Background(), frame, Options{}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, rep.Alerts)

	var buf bytes.Buffer
	require.NoError(t, RenderHTML(rep, &buf))
	assert.Contains(t, buf.String(), "is constant")
}

func TestWriteHTML_DefaultAndCustomPath(t *testing.T) {
	frame := loadFrame(t, smallCSV)
	rep, err := Build(context.Background(), frame, Options{}, nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "nested", "report.html")
	path, err := WriteHTML(rep, out)
	require.NoError(t, err)
	assert.Equal(t, out, path)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html>")
}

func TestNumFormatting(t *testing.T) {
	assert.Equal(t, "1.235", num(1.23456))
	assert.Equal(t, "NaN", num(nanValue()))
	assert.Equal(t, "3", num(3.0))
	assert.Equal(t, "50%", pct(50))
}

func TestOptionsDeliberateZeroThresholdSurvives(t *testing.T) {
	zero := 0.0
	opts := Options{CorrThreshold: &zero}.withDefaults()
	assert.Equal(t, 0.0, *opts.CorrThreshold)

	opts = Options{}.withDefaults()
	assert.Equal(t, corr.DefaultThreshold, *opts.CorrThreshold)
}

func TestTitleHandlesMultibyteNames(t *testing.T) {
	assert.Equal(t, "Unit Price", title("unit_price"))
	assert.Equal(t, "Água Total", title("água_total"))
	assert.Equal(t, "Ärzte", title("ärzte"))
	assert.Equal(t, "X", title("x"))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
