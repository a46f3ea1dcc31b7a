package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/setcover/cft"
	"github.com/katalvlaran/setcover/fixing"
)

// Config mirrors cft.Options in a file-friendly shape.
type Config struct {
	Seed           int64   `yaml:"seed"`
	TimeLimit      string  `yaml:"time_limit"` // Go duration, "" or "0" for unlimited
	Epsilon        float64 `yaml:"epsilon"`
	HeurIters      int     `yaml:"heur_iters"`
	Alpha          float64 `yaml:"alpha"`
	Beta           float64 `yaml:"beta"`
	AbsSubgradExit float64 `yaml:"abs_subgrad_exit"`
	RelSubgradExit float64 `yaml:"rel_subgrad_exit"`
	MinFixing      float64 `yaml:"min_fixing"`
	Verbose        int     `yaml:"verbose"`
	Workers        int     `yaml:"workers"`
	StepFactor     float64 `yaml:"step_factor"`
	MaxRounds      int     `yaml:"max_rounds"`
	Scorer         string  `yaml:"scorer"` // delta | frequency
}

// Scorer names accepted in Config.Scorer.
const (
	scorerDelta     = "delta"
	scorerFrequency = "frequency"
)

// DefaultConfig returns the solver defaults.
func DefaultConfig() *Config {
	o := cft.DefaultOptions()

	return &Config{
		Seed:           o.Seed,
		TimeLimit:      "0s",
		Epsilon:        o.Epsilon,
		HeurIters:      o.HeurIters,
		Alpha:          o.Alpha,
		Beta:           o.Beta,
		AbsSubgradExit: o.AbsSubgradExit,
		RelSubgradExit: o.RelSubgradExit,
		MinFixing:      o.MinFixing,
		Verbose:        o.Verbose,
		Workers:        o.Workers,
		StepFactor:     o.StepFactor,
		MaxRounds:      o.MaxRounds,
		Scorer:         scorerDelta,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults; keys missing from the file keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Options converts the config into solver options. The result is validated
// by cft.Solve, so only the fields with a textual form are checked here.
func (c *Config) Options() (cft.Options, error) {
	var limit time.Duration
	if c.TimeLimit != "" {
		d, err := time.ParseDuration(c.TimeLimit)
		if err != nil {
			return cft.Options{}, fmt.Errorf("invalid time_limit %q: %w", c.TimeLimit, err)
		}
		limit = d
	}

	var scorer fixing.Scorer
	switch c.Scorer {
	case "", scorerDelta:
		scorer = fixing.DeltaScorer{}
	case scorerFrequency:
		scorer = fixing.NewFrequencyScorer()
	default:
		return cft.Options{}, fmt.Errorf("invalid scorer %q (valid: %s, %s)", c.Scorer, scorerDelta, scorerFrequency)
	}

	return cft.Options{
		Seed:           c.Seed,
		TimeLimit:      limit,
		Epsilon:        c.Epsilon,
		HeurIters:      c.HeurIters,
		Alpha:          c.Alpha,
		Beta:           c.Beta,
		AbsSubgradExit: c.AbsSubgradExit,
		RelSubgradExit: c.RelSubgradExit,
		MinFixing:      c.MinFixing,
		Verbose:        c.Verbose,
		Workers:        c.Workers,
		StepFactor:     c.StepFactor,
		MaxRounds:      c.MaxRounds,
		Scorer:         scorer,
	}, nil
}
