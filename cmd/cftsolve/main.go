// Command cftsolve generates synthetic set-covering instances and solves them
// with the CFT heuristic.
//
//	cftsolve solve --kind sparse --rows 200 --cols 2000 --density 0.02 --seed 1
//	cftsolve solve --kind fixture --fixture split -v
//	cftsolve solve --config cft.yaml --plot convergence.png
//	cftsolve config > cft.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    int
	configPath string

	// Logger, tagged with the run id
	logger *zap.Logger
	runID  string
)

var rootCmd = &cobra.Command{
	Use:   "cftsolve",
	Short: "Weighted set covering with the CFT heuristic",
	Long: `cftsolve builds a synthetic set-covering instance (random sparse,
RAIL-like, planted or one of the hand-made fixtures) and solves it with
Lagrangian subgradient ascent, greedy construction and column fixing.

Solver options come from an optional YAML file (see "cftsolve config");
command line flags override the file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		runID = uuid.NewString()

		config := zap.NewProductionConfig()
		if verbose >= 2 {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", runID))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective solver configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  printConfig,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Verbosity (-v rounds, -vv phases)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML solver configuration")

	registerSolveFlags(solveCmd)

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printConfig writes the file configuration merged over the defaults.
func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
