package fixing

import (
	"math"

	"github.com/katalvlaran/setcover/instance"
)

// Scorer ranks the columns of an incumbent by how safe it is to force them in.
// Lower scores are fixed first.
type Scorer interface {
	// Score returns one value per entry of sol, computed over sp with the
	// base multipliers u (len = sp.NumRows()).
	Score(sp *instance.Sparse, sol []int, u []float64) []float64
}

// Observer is implemented by scorers that learn from every constructed cover.
type Observer interface {
	Observe(sol []int)
}

// DeltaScorer is the CFT refinement score
//
//	delta_j = Σ_{i∈j} u_i·(cov_i − 1)/cov_i + max(rc_j, 0)
//
// where cov_i counts the columns of sol covering row i. Columns that share
// few rows with the rest of the incumbent and price well score low.
type DeltaScorer struct{}

// Score implements Scorer.
func (DeltaScorer) Score(sp *instance.Sparse, sol []int, u []float64) []float64 {
	cc := instance.NewCoverCounters(sp.NumRows())
	for _, j := range sol {
		cc.Cover(sp.Col(j))
	}

	out := make([]float64, len(sol))
	for k, j := range sol {
		var delta float64
		rc := sp.Cost(j)
		for _, i := range sp.Col(j) {
			cov := float64(cc.At(i))
			delta += u[i] * (cov - 1) / cov
			rc -= u[i]
		}
		out[k] = delta + math.Max(rc, 0)
	}

	return out
}

// FrequencyScorer prefers columns that appeared in many of the observed
// covers. Ties fall back to the order of the base column index.
type FrequencyScorer struct {
	counts []int
	seen   int
}

// NewFrequencyScorer returns a scorer with no observations.
func NewFrequencyScorer() *FrequencyScorer {
	return &FrequencyScorer{}
}

// Observe counts one cover.
func (f *FrequencyScorer) Observe(sol []int) {
	f.seen++
	for _, j := range sol {
		if j >= len(f.counts) {
			f.counts = append(f.counts, make([]int, j+1-len(f.counts))...)
		}
		f.counts[j]++
	}
}

// Score implements Scorer: −(appearances / observed covers).
func (f *FrequencyScorer) Score(_ *instance.Sparse, sol []int, _ []float64) []float64 {
	out := make([]float64, len(sol))
	if f.seen == 0 {
		return out
	}
	for k, j := range sol {
		if j < len(f.counts) {
			out[k] = -float64(f.counts[j]) / float64(f.seen)
		}
	}

	return out
}
