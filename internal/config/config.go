// Package config holds the tspbrute CLI settings.
//
// Settings come from three layers, later ones winning:
//
//	Default() → YAML file (Load) → command-line flags
//
// The YAML file is read in strict mode: unknown keys are an error, so a typo
// never silently falls back to a default. ${VAR} references are expanded from
// the environment before parsing.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/tspbrute/graphio"
	"github.com/katalvlaran/tspbrute/tsp"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is matched by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root document.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Solve    SolveConfig    `yaml:"solve"`
	Log      LogConfig      `yaml:"log"`
}

// GenerateConfig drives the "generate" subcommand.
type GenerateConfig struct {
	// Size is the vertex count.
	Size int `yaml:"size"`
	// Lower and Upper bound the weight range [Lower, Upper).
	Lower int `yaml:"lower"`
	Upper int `yaml:"upper"`
	// Seed fixes the draws; 0 means time-seeded.
	Seed int64 `yaml:"seed"`
	// Symmetric mirrors w(i,j) into w(j,i).
	Symmetric bool `yaml:"symmetric"`
	// Format is used when writing to stdout: json, yaml or tsplib.
	Format string `yaml:"format"`
}

// SolveConfig drives the "solve" subcommand.
type SolveConfig struct {
	// Strategy is "chain" (reference candidate subset) or "exhaustive".
	Strategy string `yaml:"strategy"`
	// Top > 1 prints the Top best candidates instead of only the minimum.
	Top int `yaml:"top"`
	// Metrics dumps Prometheus text exposition to stderr after solving.
	Metrics bool `yaml:"metrics"`
	// Format is used when reading from stdin: json, yaml or tsplib.
	Format string `yaml:"format"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Default returns the settings used when neither a file nor flags say otherwise.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			Size:   5,
			Lower:  1,
			Upper:  10,
			Format: "json",
		},
		Solve: SolveConfig{
			Strategy: tsp.StrategyMutationChain.String(),
			Top:      1,
			Format:   "json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read configuration file '%s': %w", path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in '%s': %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be checked by the libraries
// themselves (names of strategies, formats and log settings). Generator
// limits are left to builder.Generate so the error text stays in one place.
func (c Config) Validate() error {
	if _, err := graphio.ParseFormat(c.Generate.Format); err != nil {
		return fmt.Errorf("generate.format: %w: %w", ErrInvalid, err)
	}
	if _, err := graphio.ParseFormat(c.Solve.Format); err != nil {
		return fmt.Errorf("solve.format: %w: %w", ErrInvalid, err)
	}
	if _, err := tsp.ParseStrategy(c.Solve.Strategy); err != nil {
		return fmt.Errorf("solve.strategy: %w: %w", ErrInvalid, err)
	}
	if c.Solve.Top < 1 {
		return fmt.Errorf("solve.top=%d: %w", c.Solve.Top, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// SlogLevel maps Level onto slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}
