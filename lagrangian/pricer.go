package lagrangian

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/setcover/instance"
)

const (
	// pricingBlock is the number of columns priced by one task.
	pricingBlock = 2048

	// parallelMinCols is the smallest column count for which the fan-out pays off.
	parallelMinCols = 4 * pricingBlock
)

// Pricer computes reduced costs and the Lagrangian bound of a fixed incidence.
//
// Columns are split into fixed-size blocks. Each block yields a partial
// negative sum and the partials are added in block order, so the bound does
// not depend on how many workers priced the blocks.
//
// A Pricer is not safe for concurrent Price calls; it owns its scratch.
type Pricer struct {
	sp       *instance.Sparse
	workers  int
	partials []float64
}

// NewPricer returns a pricer over sp. workers ≤ 1 prices sequentially.
func NewPricer(sp *instance.Sparse, workers int) *Pricer {
	nblocks := (sp.NumCols() + pricingBlock - 1) / pricingBlock

	return &Pricer{
		sp:       sp,
		workers:  workers,
		partials: make([]float64, nblocks),
	}
}

// Sparse returns the incidence being priced.
func (p *Pricer) Sparse() *instance.Sparse { return p.sp }

// Parallel reports whether Price fans out.
func (p *Pricer) Parallel() bool {
	return p.workers > 1 && p.sp.NumCols() >= parallelMinCols
}

// Price fills rc for multipliers u and returns L(u).
//
// Errors: ErrDimensionMismatch; ctx.Err() when cancelled during a fan-out.
//
// Complexity: O(nnz) work, O(nnz / workers) span.
func (p *Pricer) Price(ctx context.Context, u, rc []float64) (float64, error) {
	ncols := p.sp.NumCols()
	if len(u) != p.sp.NumRows() || len(rc) != ncols {
		return 0, fmt.Errorf("price: %d multipliers for %d rows, %d slots for %d columns: %w",
			len(u), p.sp.NumRows(), len(rc), ncols, ErrDimensionMismatch)
	}

	if !p.Parallel() {
		for b := range p.partials {
			p.priceBlock(u, rc, b)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)
		for b := range p.partials {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				p.priceBlock(u, rc, b)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	return floats.Sum(u) + floats.Sum(p.partials), nil
}

// priceBlock prices block b and stores its negative partial sum.
func (p *Pricer) priceBlock(u, rc []float64, b int) {
	lo := b * pricingBlock
	hi := min(lo+pricingBlock, p.sp.NumCols())
	priceRange(p.sp, u, rc, lo, hi)
	p.partials[b] = negativeSum(rc[lo:hi])
}
