package visual

import (
	"context"
	"fmt"
	"time"
)

// Renderer is the drawing collaborator: it accepts ordered labels plus
// numeric data and returns an opaque encoded image artifact. The report
// layer depends on this interface so it can be exercised without a
// browser.
type Renderer interface {
	Heatmap(ctx context.Context, labels []string, grid [][]float64) (ImageResult, error)
	CategoryBars(ctx context.Context, column string, values []string, counts []int) (ImageResult, error)
	Histogram(ctx context.Context, column string, values []float64, bins int) (ImageResult, error)
}

// ChromeRenderer renders echarts HTML through a headless browser.
type ChromeRenderer struct {
	Timeout time.Duration
}

// NewChromeRenderer probes headless availability and returns a working
// renderer, or an error when no browser can be launched.
func NewChromeRenderer(ctx context.Context, timeout time.Duration) (*ChromeRenderer, error) {
	if err := EnsureHeadlessAvailable(ctx); err != nil {
		return nil, fmt.Errorf("headless browser unavailable: %w", err)
	}
	return &ChromeRenderer{Timeout: timeout}, nil
}

// Heatmap renders the full correlation grid. Zero features yields an
// empty artifact and no error.
func (r *ChromeRenderer) Heatmap(ctx context.Context, labels []string, grid [][]float64) (ImageResult, error) {
	if len(labels) == 0 {
		return ImageResult{}, nil
	}
	html, err := renderPage(buildHeatmapChart(labels, grid))
	if err != nil {
		return ImageResult{}, err
	}
	png, err := renderHTMLToPNG(ctx, html, chartWidthPx, chartHeightPx, r.Timeout)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Bytes:       png,
		Filename:    pngName("heatmap", "correlation"),
		Description: fmt.Sprintf("correlation heatmap over %d features", len(labels)),
	}, nil
}

func (r *ChromeRenderer) CategoryBars(ctx context.Context, column string, values []string, counts []int) (ImageResult, error) {
	if len(values) == 0 {
		return ImageResult{}, nil
	}
	html, err := renderPage(buildCategoryBarChart(column, values, counts))
	if err != nil {
		return ImageResult{}, err
	}
	png, err := renderHTMLToPNG(ctx, html, chartWidthPx, barHeightPx, r.Timeout)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Bytes:       png,
		Filename:    pngName("categories", column),
		Description: fmt.Sprintf("category distribution for %s (%d levels shown)", column, len(values)),
	}, nil
}

func (r *ChromeRenderer) Histogram(ctx context.Context, column string, values []float64, bins int) (ImageResult, error) {
	if len(values) == 0 {
		return ImageResult{}, nil
	}
	html, err := renderPage(buildHistogramChart(column, values, bins))
	if err != nil {
		return ImageResult{}, err
	}
	png, err := renderHTMLToPNG(ctx, html, chartWidthPx, barHeightPx, r.Timeout)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Bytes:       png,
		Filename:    pngName("histogram", column),
		Description: fmt.Sprintf("value distribution for %s", column),
	}, nil
}
