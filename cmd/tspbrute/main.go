// Command tspbrute generates random weighted graphs and solves the TSP on them
// by brute-force candidate enumeration.
//
// Usage:
//
//	tspbrute generate [-config f.yaml] [-n 5] [-lower 1] [-upper 10] [-seed 0] [-symmetric] [-format json] [-o out.json]
//	tspbrute solve    [-config f.yaml] [-strategy chain|exhaustive] [-top 1] [-metrics] [-format json] [graph-file]
//
// solve reads stdin when no file is given. Exit status: 0 on success, 1 on
// error, 2 when the graph has no valid cycle among the candidates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/tspbrute/builder"
	"github.com/katalvlaran/tspbrute/graph"
	"github.com/katalvlaran/tspbrute/graphio"
	"github.com/katalvlaran/tspbrute/internal/config"
	"github.com/katalvlaran/tspbrute/metrics"
	"github.com/katalvlaran/tspbrute/tsp"
)

const (
	exitOK      = 0
	exitError   = 1
	exitNoCycle = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitError
	}

	switch args[0] {
	case "generate":
		return runGenerate(args[1:], stdout, stderr)
	case "solve":
		return runSolve(args[1:], stdin, stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Syntax : tspbrute (generate|solve) [options]\n")
	fmt.Fprintf(w, "Run 'tspbrute <command> -h' for the options of a command.\n")
}

// loadConfig reads -config (if any) and applies the flags the user actually
// set on top of it. apply receives the flag name and the config to patch.
func loadConfig(fs *flag.FlagSet, path string, apply func(name string, cfg *config.Config)) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) { apply(f.Name, &cfg) })
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// newLogger builds the slog logger for one invocation, tagged with a run id.
func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	lvl, _ := lc.SlogLevel() // validated by loadConfig
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if lc.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("run", uuid.NewString())
}

func runGenerate(args []string, stdout, stderr io.Writer) int {
	var (
		fs        = flag.NewFlagSet("generate", flag.ContinueOnError)
		def       = config.Default().Generate
		cfgPath   = fs.String("config", "", "YAML configuration file")
		size      = fs.Int("n", def.Size, "number of vertices")
		lower     = fs.Int("lower", def.Lower, "lowest edge weight (inclusive, non-zero)")
		upper     = fs.Int("upper", def.Upper, "highest edge weight (exclusive, non-zero)")
		seed      = fs.Int64("seed", def.Seed, "random seed, 0 for time-seeded")
		symmetric = fs.Bool("symmetric", def.Symmetric, "mirror w(i,j) into w(j,i)")
		format    = fs.String("format", def.Format, "stdout format: json, yaml or tsplib")
		out       = fs.String("o", "", "output file; the extension selects the format")
		logLevel  = fs.String("log-level", "", "debug, info, warn or error")
	)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := loadConfig(fs, *cfgPath, func(name string, c *config.Config) {
		switch name {
		case "n":
			c.Generate.Size = *size
		case "lower":
			c.Generate.Lower = *lower
		case "upper":
			c.Generate.Upper = *upper
		case "seed":
			c.Generate.Seed = *seed
		case "symmetric":
			c.Generate.Symmetric = *symmetric
		case "format":
			c.Generate.Format = *format
		case "log-level":
			c.Log.Level = *logLevel
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "could not load configuration: %v\n", err)
		return exitError
	}
	logger := newLogger(stderr, cfg.Log)

	gc := cfg.Generate
	var opts []builder.Option
	if gc.Seed != 0 {
		opts = append(opts, builder.WithSeed(gc.Seed))
	}
	if gc.Symmetric {
		opts = append(opts, builder.WithSymmetric())
	}

	g, err := builder.Generate(gc.Size, gc.Lower, gc.Upper, opts...)
	if err != nil {
		logger.Error("generate failed", "error", err)
		return exitError
	}
	logger.Debug("graph generated", "vertices", g.Order(), "edges", g.EdgeCount(), "symmetric", g.IsSymmetric())

	if *out != "" {
		if err = graphio.WriteFile(*out, g); err != nil {
			logger.Error("write failed", "path", *out, "error", err)
			return exitError
		}
		logger.Info("graph written", "path", *out, "vertices", g.Order())
		return exitOK
	}

	f, _ := graphio.ParseFormat(gc.Format) // validated by loadConfig
	if err = graphio.Encode(stdout, g, f); err != nil {
		logger.Error("encode failed", "error", err)
		return exitError
	}

	return exitOK
}

func runSolve(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		fs        = flag.NewFlagSet("solve", flag.ContinueOnError)
		def       = config.Default().Solve
		cfgPath   = fs.String("config", "", "YAML configuration file")
		strategy  = fs.String("strategy", def.Strategy, "candidate generation: chain or exhaustive")
		top       = fs.Int("top", def.Top, "print the k best candidates")
		withStats = fs.Bool("metrics", def.Metrics, "dump Prometheus metrics to stderr")
		format    = fs.String("format", def.Format, "stdin format: json, yaml or tsplib")
		logLevel  = fs.String("log-level", "", "debug, info, warn or error")
	)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "Syntax : tspbrute solve [options] [graph.json|graph.yaml|graph.tsp]\n")
		fs.PrintDefaults()
		return exitError
	}

	cfg, err := loadConfig(fs, *cfgPath, func(name string, c *config.Config) {
		switch name {
		case "strategy":
			c.Solve.Strategy = *strategy
		case "top":
			c.Solve.Top = *top
		case "metrics":
			c.Solve.Metrics = *withStats
		case "format":
			c.Solve.Format = *format
		case "log-level":
			c.Log.Level = *logLevel
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "could not load configuration: %v\n", err)
		return exitError
	}
	logger := newLogger(stderr, cfg.Log)

	g, err := readGraph(fs.Arg(0), stdin, cfg.Solve.Format)
	if err != nil {
		logger.Error("could not read graph", "error", err)
		return exitError
	}

	s, _ := tsp.ParseStrategy(cfg.Solve.Strategy) // validated by loadConfig
	opts := tsp.Options{Strategy: s}
	var collector *metrics.Collector
	if cfg.Solve.Metrics {
		collector = metrics.New()
		opts.OnCandidate = collector.Hook()
	}

	logger.Debug("solve started", "vertices", g.Order(), "strategy", s.String(), "top", cfg.Solve.Top)
	start := time.Now()

	code := exitOK
	if cfg.Solve.Top > 1 {
		code = printRanked(stdout, logger, collector, g, cfg.Solve.Top, opts)
	} else {
		res, err := tsp.Solve(g, opts)
		if collector != nil {
			collector.ObserveResult(res, err)
		}
		code = printResult(stdout, logger, res, err)
	}
	logger.Info("solve finished", "duration", time.Since(start), "vertices", g.Order(), "strategy", s.String())

	if collector != nil {
		if err = collector.WriteText(stderr); err != nil {
			logger.Warn("metrics dump failed", "error", err)
		}
	}

	return code
}

// readGraph loads path, or stdin in the given format when path is empty.
func readGraph(path string, stdin io.Reader, format string) (*graph.Graph, error) {
	if path != "" {
		return graphio.ReadFile(path)
	}
	f, err := graphio.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return graphio.Decode(stdin, f)
}

func printResult(w io.Writer, logger *slog.Logger, res tsp.Result, err error) int {
	switch {
	case errors.Is(err, tsp.ErrNoValidCycle):
		logger.Warn("no valid cycle", "examined", res.Examined)
		fmt.Fprintf(w, "no valid cycle (%d candidates examined)\n", res.Examined)
		return exitNoCycle
	case err != nil:
		logger.Error("solve failed", "error", err)
		return exitError
	}

	logger.Debug("minimum found", "weight", res.Weight, "examined", res.Examined, "survivors", res.Survivors)
	fmt.Fprintf(w, "cycle: %s\n", tsp.FormatCycle(res.Cycle))
	fmt.Fprintf(w, "weight: %d\n", res.Weight)

	return exitOK
}

// printRanked prints the k best candidates. The collector, when set, records
// the best entry as the solve outcome.
func printRanked(w io.Writer, logger *slog.Logger, collector *metrics.Collector, g *graph.Graph, k int, opts tsp.Options) int {
	ranked, err := tsp.Rank(g, k, opts)
	if collector != nil {
		var best tsp.Result
		if len(ranked) > 0 {
			best = tsp.Result{Cycle: ranked[0].Cycle, Weight: ranked[0].Weight}
		}
		collector.ObserveResult(best, err)
	}
	switch {
	case errors.Is(err, tsp.ErrNoValidCycle):
		logger.Warn("no valid cycle")
		fmt.Fprintln(w, "no valid cycle")
		return exitNoCycle
	case err != nil:
		logger.Error("rank failed", "error", err)
		return exitError
	}

	for i, r := range ranked {
		fmt.Fprintf(w, "%d. weight %d: %s\n", i+1, r.Weight, tsp.FormatCycle(r.Cycle))
	}

	return exitOK
}
