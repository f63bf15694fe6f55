package corr

import (
	"math"
	"sort"
)

// Pair is one unordered feature pair with the absolute value of its
// correlation coefficient. FeatureA always precedes FeatureB in the
// matrix's canonical order.
type Pair struct {
	FeatureA string  `json:"feature_a"`
	FeatureB string  `json:"feature_b"`
	Strength float64 `json:"strength"`
}

const (
	DefaultThreshold = 0.6
	DefaultTopN      = 10
)

// RankPairs visits the strictly-upper triangle of the matrix (row index
// before column index, so each unordered pair is seen exactly once and
// self-pairs never), ranks pairs by absolute coefficient descending,
// keeps those at or above threshold, and truncates to topN. Filtering
// happens before truncation, so weak pairs never consume topN slots.
// Ties keep matrix iteration order. Non-finite coefficients are skipped.
//
// Fewer than two features yields an empty list.
func RankPairs(m Matrix, threshold float64, topN int) []Pair {
	n := m.Len()
	if n < 2 || topN <= 0 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			pairs = append(pairs, Pair{
				FeatureA: m.features[i],
				FeatureB: m.features[j],
				Strength: math.Abs(v),
			})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Strength > pairs[b].Strength
	})
	kept := pairs[:0]
	for _, p := range pairs {
		if p.Strength >= threshold {
			kept = append(kept, p)
		}
	}
	if len(kept) > topN {
		kept = kept[:topN]
	}
	if len(kept) == 0 {
		return nil
	}
	out := make([]Pair, len(kept))
	copy(out, kept)
	return out
}
