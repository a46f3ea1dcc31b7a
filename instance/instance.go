package instance

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// MaxElement is the largest element index a column may reference. Row sets
// are 32-bit bitmaps, so the universe never exceeds MaxElement+1 rows.
const MaxElement = math.MaxUint32 - 1

// State is the explicit lifecycle tag of an Instance.
type State uint8

const (
	// Building accepts new columns; no incidence view exists.
	Building State = iota
	// Prepared carries a validated incidence view until the next AddColumn.
	Prepared
)

// String renders the state for logs.
func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Prepared:
		return "prepared"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Option configures a new Instance.
type Option func(*Instance)

// WithUniverse declares the element universe [0, n) up front. Columns that
// reference an element ≥ n are rejected; elements in [0, n) that no column
// covers make Prepare fail. Panics on n < 0 (programmer error).
func WithUniverse(n int) Option {
	if n < 0 {
		panic("instance: WithUniverse: n must be non-negative")
	}

	return func(in *Instance) { in.universe = n }
}

// WithCapacity pre-sizes the column storage.
func WithCapacity(ncols int) Option {
	return func(in *Instance) {
		if ncols > 0 {
			in.cols = make([][]int, 0, ncols)
			in.costs = make([]float64, 0, ncols)
		}
	}
}

// Instance is an append-only set covering instance.
//
// Concurrency: all methods are safe for concurrent use; the Sparse view
// handed out by a Prepared instance is immutable and may be shared freely.
type Instance struct {
	mu sync.RWMutex

	state    State
	cols     [][]int         // sorted, deduplicated element lists
	costs    []float64       // one non-negative cost per column
	universe int             // declared universe size, -1 when implied
	maxElem  int             // largest referenced element, -1 when none
	elems    *roaring.Bitmap // every referenced element
	sparse   *Sparse         // non-nil iff state == Prepared
}

// New returns an empty Instance in the Building state.
func New(opts ...Option) *Instance {
	in := &Instance{
		state:    Building,
		universe: -1,
		maxElem:  -1,
		elems:    roaring.New(),
	}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// AddColumn appends a column covering elements at the given cost and returns
// its zero-based index. Duplicated elements are collapsed. The caller's slice
// is copied, never retained.
//
// Errors (ColumnError unwrapping to ErrInvalidInput):
//   - cost negative, NaN or infinite;
//   - empty element list;
//   - negative element, element above MaxElement, or element outside a
//     declared universe.
//
// On error the instance is left untouched. On success it moves to Building.
//
// Complexity: O(k log k) for k elements.
func (in *Instance) AddColumn(elements []int, cost float64) (int, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	j := len(in.cols)
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return -1, ColumnError{Column: j, Element: -1, Cost: cost, Reason: "cost must be finite"}
	}
	if cost < 0 {
		return -1, ColumnError{Column: j, Element: -1, Cost: cost, Reason: "cost must be non-negative"}
	}
	if len(elements) == 0 {
		return -1, ColumnError{Column: j, Element: -1, Cost: cost, Reason: "column covers no element"}
	}

	col := slices.Clone(elements)
	slices.Sort(col)
	col = slices.Compact(col)
	if col[0] < 0 {
		return -1, ColumnError{Column: j, Element: col[0], Cost: cost, Reason: "element must be non-negative"}
	}
	last := col[len(col)-1]
	if uint64(last) > MaxElement {
		return -1, ColumnError{
			Column:  j,
			Element: last,
			Cost:    cost,
			Reason:  fmt.Sprintf("element above maximum %d", uint64(MaxElement)),
		}
	}
	if in.universe >= 0 && last >= in.universe {
		return -1, ColumnError{
			Column:  j,
			Element: last,
			Cost:    cost,
			Reason:  fmt.Sprintf("element outside declared universe [0,%d)", in.universe),
		}
	}

	in.cols = append(in.cols, slices.Clip(col))
	in.costs = append(in.costs, cost)
	if last > in.maxElem {
		in.maxElem = last
	}
	for _, e := range col {
		in.elems.Add(uint32(e))
	}
	in.state = Building
	in.sparse = nil

	return j, nil
}

// Prepare rebuilds the row→column incidence from scratch and validates that
// every element of the universe is covered by at least one column.
//
// Errors: ErrInfeasibleInstance (wrapped with the first uncovered element).
// On error the instance stays in Building.
//
// Complexity: O(nnz + rows + cols); an uncovered element is reported in
// O(nnz) without allocating the rows.
func (in *Instance) Prepare() error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.state == Prepared && in.sparse != nil {
		return nil
	}

	// Gaps are found on the element bitmap, before any per-row allocation.
	n := in.numElementsLocked()
	if got := in.elems.GetCardinality(); got < uint64(n) {
		gaps := roaring.New()
		gaps.AddRange(0, uint64(n))
		gaps.AndNot(in.elems)
		return fmt.Errorf("instance: element %d (and %d more) covered by no column: %w",
			gaps.Minimum(), gaps.GetCardinality()-1, ErrInfeasibleInstance)
	}

	sp, err := NewSparse(n, in.cols, in.costs)
	if err != nil {
		return fmt.Errorf("instance: prepare: %w", err)
	}
	if missing := sp.Uncovered(); len(missing) > 0 {
		return fmt.Errorf("instance: element %d (and %d more) covered by no column: %w",
			missing[0], len(missing)-1, ErrInfeasibleInstance)
	}

	in.sparse = sp
	in.state = Prepared

	return nil
}

// State reports the lifecycle tag.
func (in *Instance) State() State {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.state
}

// Sparse returns the immutable incidence view of a Prepared instance.
func (in *Instance) Sparse() (*Sparse, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if in.state != Prepared || in.sparse == nil {
		return nil, ErrNotPrepared
	}

	return in.sparse, nil
}

// NumElements returns the universe size: the declared one, or the largest
// referenced element + 1.
func (in *Instance) NumElements() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.numElementsLocked()
}

func (in *Instance) numElementsLocked() int {
	if in.universe >= 0 {
		return in.universe
	}

	return in.maxElem + 1
}

// NumColumns returns the number of columns added so far.
func (in *Instance) NumColumns() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return len(in.cols)
}

// Column returns a copy of column j's element list and its cost.
func (in *Instance) Column(j int) ([]int, float64, error) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	if j < 0 || j >= len(in.cols) {
		return nil, 0, ErrColumnOutOfRange
	}

	return slices.Clone(in.cols[j]), in.costs[j], nil
}
