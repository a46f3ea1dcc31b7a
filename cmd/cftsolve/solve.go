package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/setcover/builder"
	"github.com/katalvlaran/setcover/cft"
	"github.com/katalvlaran/setcover/instance"
)

// Instance kinds accepted by --kind.
const (
	kindSparse  = "sparse"
	kindRail    = "rail"
	kindPlanted = "planted"
	kindFixture = "fixture"
)

// Cost models accepted by --costs.
const (
	costsUnit   = "unit"
	costsInt    = "int100"
	costsScaled = "scaled"
)

// genFlags describe the instance to generate.
type genFlags struct {
	kind    string
	rows    int
	cols    int
	density float64
	span    int
	parts   int
	fixture string
	genSeed int64
	costs   string
	cover   int
}

// solveFlags override Config fields when set on the command line.
type solveFlags struct {
	seed      int64
	timeLimit time.Duration
	maxRounds int
	heurIters int
	workers   int
	scorer    string
	plotPath  string
	columns   bool
}

var (
	gen genFlags
	sol solveFlags
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Generate an instance and solve it",
	Example: `  cftsolve solve --kind sparse --rows 200 --cols 2000 --density 0.02 --costs int100
  cftsolve solve --kind rail --rows 500 --cols 20000 --span 8 --time-limit 30s
  cftsolve solve --kind fixture --fixture split --columns`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func registerSolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&gen.kind, "kind", kindSparse, "Instance kind: sparse, rail, planted, fixture")
	f.IntVar(&gen.rows, "rows", 200, "Number of rows (elements)")
	f.IntVar(&gen.cols, "cols", 2000, "Number of columns (decoys for planted)")
	f.Float64Var(&gen.density, "density", 0.02, "Incidence density (sparse, planted)")
	f.IntVar(&gen.span, "span", 8, "Longest duty (rail)")
	f.IntVar(&gen.parts, "parts", 10, "Hidden cover size (planted)")
	f.StringVar(&gen.fixture, "fixture", builder.FixtureSplit, "Fixture name (fixture)")
	f.Int64Var(&gen.genSeed, "gen-seed", 1, "Instance generator seed")
	f.StringVar(&gen.costs, "costs", costsInt, "Cost model: unit, int100, scaled")
	f.IntVar(&gen.cover, "min-row-cover", 1, "Minimum columns per row (sparse, rail)")

	f.Int64Var(&sol.seed, "seed", 0, "Solver seed")
	f.DurationVar(&sol.timeLimit, "time-limit", 0, "Wall-clock budget (0 = unlimited)")
	f.IntVar(&sol.maxRounds, "max-rounds", 0, "Refinement round cap (0 = none)")
	f.IntVar(&sol.heurIters, "heur-iters", cft.DefaultHeurIters, "Heuristic phase length")
	f.IntVar(&sol.workers, "workers", 1, "Pricing goroutines")
	f.StringVar(&sol.scorer, "scorer", scorerDelta, "Refinement scorer: delta, frequency")
	f.StringVar(&sol.plotPath, "plot", "", "Write a convergence chart (png, svg or pdf)")
	f.BoolVar(&sol.columns, "columns", false, "Print the selected column indices")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Verbose = max(opts.Verbose, verbose)
	opts.Logger = logger

	var conv convergence
	if sol.plotPath != "" {
		opts.OnRound = conv.observe
	}

	inst, err := buildInstance(gen)
	if err != nil {
		return err
	}
	logger.Info("instance ready",
		zap.String("kind", gen.kind),
		zap.Int("rows", inst.NumElements()),
		zap.Int("cols", inst.NumColumns()))

	res, err := cft.Solve(ctx, inst, nil, cft.WithOptions(opts))
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run       %s\n", runID)
	fmt.Fprintf(out, "instance  %s rows=%d cols=%d\n", gen.kind, inst.NumElements(), inst.NumColumns())
	fmt.Fprintf(out, "status    %s\n", res.Status)
	fmt.Fprintf(out, "cost      %g\n", res.Cost())
	fmt.Fprintf(out, "bound     %g\n", res.LowerBound)
	fmt.Fprintf(out, "gap       %.4f%%\n", 100*res.Gap())
	fmt.Fprintf(out, "selected  %d\n", len(res.Solution.Columns))
	fmt.Fprintf(out, "rounds    %d\n", res.Rounds)
	fmt.Fprintf(out, "elapsed   %s\n", res.Elapsed.Round(time.Millisecond))
	if sol.columns {
		fmt.Fprintf(out, "columns   %v\n", res.Columns())
	}

	if sol.plotPath != "" {
		title := fmt.Sprintf("%s %dx%d", gen.kind, inst.NumElements(), inst.NumColumns())
		if err := conv.save(sol.plotPath, title); err != nil {
			return err
		}
		logger.Info("plot written", zap.String("path", sol.plotPath))
	}

	return nil
}

// applyOverrides copies explicitly set flags over the file configuration.
func applyOverrides(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = sol.seed
	}
	if f.Changed("time-limit") {
		cfg.TimeLimit = sol.timeLimit.String()
	}
	if f.Changed("max-rounds") {
		cfg.MaxRounds = sol.maxRounds
	}
	if f.Changed("heur-iters") {
		cfg.HeurIters = sol.heurIters
	}
	if f.Changed("workers") {
		cfg.Workers = sol.workers
	}
	if f.Changed("scorer") {
		cfg.Scorer = sol.scorer
	}
}

// buildInstance turns the generator flags into a builder call.
func buildInstance(g genFlags) (*instance.Instance, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(g.genSeed)}
	switch g.costs {
	case costsUnit:
	case costsInt:
		bopts = append(bopts, builder.WithCostFn(builder.IntegerCostFn(1, 100)))
	case costsScaled:
		bopts = append(bopts, builder.WithCostFn(builder.SizeScaledCostFn(1, 1)))
	default:
		return nil, fmt.Errorf("invalid cost model %q (valid: %s, %s, %s)", g.costs, costsUnit, costsInt, costsScaled)
	}
	if g.cover < 1 {
		return nil, fmt.Errorf("invalid min-row-cover %d: must be ≥ 1", g.cover)
	}
	bopts = append(bopts, builder.WithMinRowCover(g.cover))

	var ctor builder.Constructor
	switch g.kind {
	case kindSparse:
		ctor = builder.RandomSparse(g.rows, g.cols, g.density)
	case kindRail:
		ctor = builder.Rail(g.rows, g.cols, g.span)
	case kindPlanted:
		ctor = builder.Planted(g.rows, g.parts, g.cols, g.density)
	case kindFixture:
		ctor = builder.Fixture(g.fixture)
	default:
		return nil, fmt.Errorf("invalid kind %q (valid: %s, %s, %s, %s)", g.kind, kindSparse, kindRail, kindPlanted, kindFixture)
	}

	return builder.BuildInstance(nil, bopts, ctor)
}
