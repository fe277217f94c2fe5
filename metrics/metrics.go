// Package metrics exposes solver activity as Prometheus metrics.
//
// Each Collector owns a private registry, so several collectors (one per CLI
// run, one per test) never clash on registration. Wire it into a solve with
//
//	opts.OnCandidate = c.Hook()
//	res, err := tsp.Solve(g, opts)
//	c.ObserveResult(res, err)
package metrics

import (
	"errors"
	"io"

	"github.com/katalvlaran/tspbrute/tsp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Label values.
const (
	OutcomeValid    = "valid"
	OutcomeRejected = "rejected"

	ResultFound   = "found"
	ResultNone    = "none"
	ResultInvalid = "invalid"
)

// Collector groups the solver metrics.
type Collector struct {
	registry *prometheus.Registry

	// Candidates counts generated cycles by filter outcome (valid / rejected).
	Candidates *prometheus.CounterVec

	// Solves counts solver runs by result (found / none / invalid).
	Solves *prometheus.CounterVec

	// BestWeight is the weight of the last cycle found.
	BestWeight prometheus.Gauge
}

// New registers a fresh set of metrics on a private registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		Candidates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tspbrute_candidates_total",
				Help: "Total number of candidate cycles generated, by filter outcome",
			},
			[]string{"outcome"},
		),
		Solves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tspbrute_solves_total",
				Help: "Total number of solver runs, by result",
			},
			[]string{"result"},
		),
		BestWeight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tspbrute_best_weight",
				Help: "Weight of the last minimum cycle found",
			},
		),
	}
}

// Registry returns the private registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Hook returns a tsp.Options.OnCandidate callback feeding Candidates.
func (c *Collector) Hook() func(tsp.Candidate) {
	valid := c.Candidates.WithLabelValues(OutcomeValid)
	rejected := c.Candidates.WithLabelValues(OutcomeRejected)

	return func(cand tsp.Candidate) {
		if cand.Valid {
			valid.Inc()
			return
		}
		rejected.Inc()
	}
}

// ObserveResult records the outcome of one Solve call.
func (c *Collector) ObserveResult(res tsp.Result, err error) {
	switch {
	case err == nil:
		c.Solves.WithLabelValues(ResultFound).Inc()
		c.BestWeight.Set(float64(res.Weight))
	case errors.Is(err, tsp.ErrNoValidCycle):
		c.Solves.WithLabelValues(ResultNone).Inc()
	default:
		c.Solves.WithLabelValues(ResultInvalid).Inc()
	}
}

// WriteText writes every metric in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
