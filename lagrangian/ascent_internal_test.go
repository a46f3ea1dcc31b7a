package lagrangian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/setcover/numeric"
)

func TestPlateau_HalvesAfterWindow(t *testing.T) {
	p := plateau{window: 3, best: math.Inf(-1)}
	require.False(t, p.observe(1))
	require.False(t, p.observe(1))
	require.False(t, p.observe(0.5))
	require.True(t, p.observe(1), "third non-improving bound")
	require.False(t, p.observe(2), "improvement resets the window")
	require.Zero(t, p.since)
}

func TestExitManager_PeriodicAndBothThresholds(t *testing.T) {
	pol := numeric.DefaultPolicy()
	m := exitManager{period: 2, next: 2, prev: math.Inf(-1)}

	require.False(t, m.stagnated(0, 10, pol))
	require.False(t, m.stagnated(1, 10, pol))
	require.False(t, m.stagnated(2, 10, pol), "first measurement never stagnates")
	require.False(t, m.stagnated(3, 10, pol), "off-period")
	require.True(t, m.stagnated(4, 10.001, pol), "tiny absolute and relative gain")
	require.False(t, m.stagnated(6, 20, pol), "large gain")
	// 0.5 absolute < 1.0 but 0.5/20.5 ≈ 0.024 relative ≥ 0.001.
	require.False(t, m.stagnated(8, 20.5, pol))
}

func TestPricingSchedule_GrowsWhileCoreTracksFull(t *testing.T) {
	p := newPricingSchedule(300)
	require.Equal(t, 100, p.maxPeriod)
	require.False(t, p.due(9))
	require.True(t, p.due(10))

	p.update(100, 100, 200) // core and full agree
	require.Equal(t, 100, p.period)
	require.Equal(t, 110, p.next)

	p.update(110, 100, 200) // 5% apart
	require.Equal(t, 100, p.period)
	require.Equal(t, 210, p.next)

	p.update(200, 100, 200) // core far above full
	require.Equal(t, corePricingPeriod, p.period)
	require.Equal(t, 220, p.next)

	p.update(5, 1, math.Inf(1)) // no incumbent yet
	require.Equal(t, 100, p.period)

	tiny := newPricingSchedule(2)
	tiny.update(1, 1, 10)
	require.Equal(t, 1, tiny.period)
	require.Equal(t, corePricingPeriod+1, tiny.next)
}
