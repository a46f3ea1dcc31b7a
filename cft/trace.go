package cft

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/setcover/lagrangian"
)

// tracer gates zap output by verbosity. Ascent progress is throttled because
// it fires once per subgradient iteration.
type tracer struct {
	log      *zap.Logger
	verbose  int
	progress rate.Sometimes
}

func newTracer(log *zap.Logger, verbose int) *tracer {
	if log == nil {
		log = zap.NewNop()
	}

	return &tracer{
		log:      log.Named("cft"),
		verbose:  verbose,
		progress: rate.Sometimes{First: 1, Interval: 500 * time.Millisecond},
	}
}

func (t *tracer) warn(msg string, fields ...zap.Field) {
	t.log.Warn(msg, fields...)
}

func (t *tracer) info(msg string, fields ...zap.Field) {
	if t.verbose >= 1 {
		t.log.Info(msg, fields...)
	}
}

func (t *tracer) debug(msg string, fields ...zap.Field) {
	if t.verbose >= 2 {
		t.log.Debug(msg, fields...)
	}
}

// ascentProgress returns a lagrangian progress hook, or nil when silent.
func (t *tracer) ascentProgress() func(iter int, lb, best, factor float64) {
	if t.verbose < 2 {
		return nil
	}

	return func(iter int, lb, best, factor float64) {
		t.progress.Do(func() {
			t.log.Debug("ascent",
				zap.Int("iter", iter),
				zap.Float64("lb", lb),
				zap.Float64("best", best),
				zap.Float64("step_factor", factor))
		})
	}
}

func (t *tracer) ascentDone(a lagrangian.Ascent, cutoff float64) {
	t.debug("ascent done",
		zap.Stringer("stop", a.Stop),
		zap.Int("iters", a.Iterations),
		zap.Int("pricings", a.Pricings),
		zap.Float64("lb", a.LowerBound),
		zap.Float64("cutoff", cutoff))
}
