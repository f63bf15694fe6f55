// Package visualtest provides an in-memory Renderer for tests.
package visualtest

import (
	"context"
	"errors"
	"sync"

	"cognia/internal/analysis/visual"
)

// StubRenderer records render requests and returns tiny fake PNGs
// without touching a browser.
type StubRenderer struct {
	// Fail makes every render call return an error.
	Fail bool

	mu            sync.Mutex
	heatmapLabels []string
	histograms    []string
	categories    []string
}

func NewStubRenderer() *StubRenderer {
	return &StubRenderer{}
}

var errStub = errors.New("stub renderer failure")

func fakePNG(name string) visual.ImageResult {
	return visual.ImageResult{Bytes: []byte("png:" + name), Filename: name + ".png"}
}

func (s *StubRenderer) Heatmap(_ context.Context, labels []string, _ [][]float64) (visual.ImageResult, error) {
	if s.Fail {
		return visual.ImageResult{}, errStub
	}
	if len(labels) == 0 {
		return visual.ImageResult{}, nil
	}
	s.mu.Lock()
	s.heatmapLabels = append([]string(nil), labels...)
	s.mu.Unlock()
	return fakePNG("heatmap"), nil
}

func (s *StubRenderer) CategoryBars(_ context.Context, column string, values []string, _ []int) (visual.ImageResult, error) {
	if s.Fail {
		return visual.ImageResult{}, errStub
	}
	if len(values) == 0 {
		return visual.ImageResult{}, nil
	}
	s.mu.Lock()
	s.categories = append(s.categories, column)
	s.mu.Unlock()
	return fakePNG("cat_" + column), nil
}

func (s *StubRenderer) Histogram(_ context.Context, column string, values []float64, _ int) (visual.ImageResult, error) {
	if s.Fail {
		return visual.ImageResult{}, errStub
	}
	if len(values) == 0 {
		return visual.ImageResult{}, nil
	}
	s.mu.Lock()
	s.histograms = append(s.histograms, column)
	s.mu.Unlock()
	return fakePNG("hist_" + column), nil
}

// HeatmapLabels returns the labels from the last heatmap request.
func (s *StubRenderer) HeatmapLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heatmapLabels
}

// RenderedColumns returns the histogram and category columns rendered.
func (s *StubRenderer) RenderedColumns() (histograms, categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.histograms...), append([]string(nil), s.categories...)
}
