package instance

// CoverCounters tracks how many selected columns cover each row.
// It is a reusable scratch structure: Reset keeps the backing array.
type CoverCounters struct {
	c []int
}

// NewCoverCounters returns counters for n rows, all zero.
func NewCoverCounters(n int) *CoverCounters {
	return &CoverCounters{c: make([]int, n)}
}

// Reset zeroes the counters and resizes them to n rows.
func (cc *CoverCounters) Reset(n int) {
	if cap(cc.c) < n {
		cc.c = make([]int, n)
		return
	}
	cc.c = cc.c[:n]
	clear(cc.c)
}

// Len returns the number of rows tracked.
func (cc *CoverCounters) Len() int { return len(cc.c) }

// At returns the cover count of row i.
func (cc *CoverCounters) At(i int) int { return cc.c[i] }

// Cover adds one to every row of col and returns how many rows became covered.
func (cc *CoverCounters) Cover(col []int) int {
	var fresh int
	for _, i := range col {
		if cc.c[i] == 0 {
			fresh++
		}
		cc.c[i]++
	}

	return fresh
}

// Uncover subtracts one from every row of col and returns how many rows became uncovered.
func (cc *CoverCounters) Uncover(col []int) int {
	var lost int
	for _, i := range col {
		cc.c[i]--
		if cc.c[i] == 0 {
			lost++
		}
	}

	return lost
}

// Redundant reports whether removing a column already counted in cc keeps
// every row of col covered (all counts ≥ 2).
func (cc *CoverCounters) Redundant(col []int) bool {
	for _, i := range col {
		if cc.c[i] < 2 {
			return false
		}
	}

	return true
}

// RedundantCover reports whether adding col would cover no new row.
func (cc *CoverCounters) RedundantCover(col []int) bool {
	for _, i := range col {
		if cc.c[i] == 0 {
			return false
		}
	}

	return true
}

// Uncovered counts rows with a zero counter.
func (cc *CoverCounters) Uncovered() int {
	var n int
	for _, v := range cc.c {
		if v == 0 {
			n++
		}
	}

	return n
}
