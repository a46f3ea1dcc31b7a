package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/setcover/cft"
	"github.com/katalvlaran/setcover/fixing"
)

// newSolveCmd returns a fresh solve command; registering the flags resets the
// package-level flag targets to their defaults.
func newSolveCmd(t *testing.T, flags map[string]string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	configPath = ""
	verbose = 0

	cmd := &cobra.Command{Use: "solve", RunE: runSolve}
	registerSolveFlags(cmd)
	for k, v := range flags {
		require.NoError(t, cmd.Flags().Set(k, v), k)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)

	return cmd, &out
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	require.Equal(t, cft.DefaultHeurIters, opts.HeurIters)
	require.Zero(t, opts.TimeLimit)
	require.IsType(t, fixing.DeltaScorer{}, opts.Scorer)
}

func TestLoadConfig_FileOverDefaults(t *testing.T) {
	path := writeFile(t, "cft.yaml", `
seed: 5
time_limit: 2s
scorer: frequency
max_rounds: 3
alpha: 1.5
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), cfg.Seed)
	require.Equal(t, 1.5, cfg.Alpha)
	require.Equal(t, cft.DefaultBeta, cfg.Beta)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, opts.TimeLimit)
	require.Equal(t, 3, opts.MaxRounds)
	require.IsType(t, &fixing.FrequencyScorer{}, opts.Scorer)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")

	_, err = LoadConfig(writeFile(t, "bad.yaml", "seed: [1, 2"))
	require.ErrorContains(t, err, "failed to parse config")

	cfg := DefaultConfig()
	cfg.TimeLimit = "soon"
	_, err = cfg.Options()
	require.ErrorContains(t, err, "time_limit")

	cfg = DefaultConfig()
	cfg.Scorer = "oracle"
	_, err = cfg.Options()
	require.ErrorContains(t, err, "scorer")
}

func TestRunSolve_Fixture(t *testing.T) {
	cmd, out := newSolveCmd(t, map[string]string{
		"kind":    "fixture",
		"fixture": "split",
		"columns": "true",
	})
	require.NoError(t, cmd.RunE(cmd, nil))

	require.Contains(t, out.String(), "status    gap-closed\n")
	require.Contains(t, out.String(), "cost      9\n")
	require.Contains(t, out.String(), "columns   [1 3]\n")
}

func TestRunSolve_ConfigAndOverrides(t *testing.T) {
	cmd, out := newSolveCmd(t, map[string]string{
		"kind":       "sparse",
		"rows":       "30",
		"cols":       "200",
		"density":    "0.1",
		"max-rounds": "2",
		"heur-iters": "10",
	})
	configPath = writeFile(t, "cft.yaml", "max_rounds: 50\ntime_limit: 10s\n")
	defer func() { configPath = "" }()

	require.NoError(t, cmd.RunE(cmd, nil))
	require.Contains(t, out.String(), "instance  sparse rows=30 cols=200\n")
	require.Regexp(t, `rounds    [12]\n`, out.String())
}

func TestRunSolve_Plot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convergence.svg")
	cmd, _ := newSolveCmd(t, map[string]string{
		"kind":       "rail",
		"rows":       "40",
		"cols":       "300",
		"span":       "5",
		"costs":      "scaled",
		"max-rounds": "3",
		"heur-iters": "10",
		"plot":       path,
	})
	require.NoError(t, cmd.RunE(cmd, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRunSolve_BadFlags(t *testing.T) {
	cmd, _ := newSolveCmd(t, map[string]string{"kind": "hypergraph"})
	require.ErrorContains(t, cmd.RunE(cmd, nil), "invalid kind")

	cmd, _ = newSolveCmd(t, map[string]string{"costs": "free"})
	require.ErrorContains(t, cmd.RunE(cmd, nil), "invalid cost model")

	cmd, _ = newSolveCmd(t, map[string]string{"kind": "fixture", "fixture": "hole"})
	require.ErrorContains(t, cmd.RunE(cmd, nil), "element 7")
}

func TestConvergence_EmptyPlot(t *testing.T) {
	var c convergence
	require.Error(t, c.save(filepath.Join(t.TempDir(), "x.png"), "empty"))
}

func TestConfigCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), "heur_iters: 250\n")
	require.Contains(t, out.String(), "scorer: delta\n")
	require.NotEmpty(t, runID)
}
