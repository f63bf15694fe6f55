package visual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramBinning(t *testing.T) {
	edges, counts := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	require.Len(t, edges, 6)
	require.Len(t, counts, 5)
	total := 0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, 10, total)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 9.0, edges[5])
	// max value lands in the last bin, not past it
	assert.GreaterOrEqual(t, counts[4], 1)
}

func TestHistogramDegenerate(t *testing.T) {
	edges, counts := histogram(nil, 30)
	assert.Equal(t, []int{0}, counts)
	require.Len(t, edges, 2)

	edges, counts = histogram([]float64{3, 3, 3}, 30)
	assert.Equal(t, []int{3}, counts)
	assert.Equal(t, 3.0, edges[0])
}

func TestBuildHeatmapChart_HTML(t *testing.T) {
	labels := []string{"alpha", "beta"}
	grid := [][]float64{{1, -0.42}, {-0.42, 1}}
	html, err := renderPage(buildHeatmapChart(labels, grid))
	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "alpha")
	assert.Contains(t, s, "beta")
	assert.Contains(t, s, "Full Correlation Heatmap")
	assert.Contains(t, s, "-0.42")
}

func TestBuildHeatmapChart_NaNCellsBlank(t *testing.T) {
	labels := []string{"a", "b"}
	nan := math.NaN()
	grid := [][]float64{{1, nan}, {nan, 1}}
	html, err := renderPage(buildHeatmapChart(labels, grid))
	require.NoError(t, err)
	assert.NotContains(t, string(html), "NaN")
}

func TestBuildCategoryBarChart_HTML(t *testing.T) {
	html, err := renderPage(buildCategoryBarChart("city", []string{"Paris", "Lyon"}, []int{12, 7}))
	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, "Paris")
	assert.Contains(t, s, "Category Distribution")
}

func TestBuildHistogramChart_HTML(t *testing.T) {
	html, err := renderPage(buildHistogramChart("score", []float64{1, 2, 2, 3, 10}, 4))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Distribution")
}

func TestImageResultDataURI(t *testing.T) {
	var nilResult *ImageResult
	assert.Equal(t, "", nilResult.DataURI())
	assert.True(t, nilResult.Empty())

	r := &ImageResult{Bytes: []byte{1, 2, 3}}
	assert.Contains(t, r.DataURI(), "data:image/png;base64,")
	assert.False(t, r.Empty())

	assert.True(t, (&ImageResult{}).Empty())
}

func TestPngName(t *testing.T) {
	assert.Equal(t, "histogram_total_price.png", pngName("histogram", "Total Price"))
	assert.Equal(t, "heatmap.png", pngName("heatmap", "***"))
}
