// Package prom exports lazyseq metrics as Prometheus counters and gauges.
package prom

import (
	"github.com/chemacortes/lazyseq"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements lazyseq.Metrics and exports Prometheus metrics.
// All Prometheus metric types are goroutine-safe, but the sequences feeding
// them are not; the adapter adds no synchronization of its own.
type Adapter struct {
	hits  prometheus.Counter
	pulls prometheus.Counter
	size  prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:     Prometheus namespace and subsystem
//   - constLabels: static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cache_hits_total",
			Help:        "Index accesses served directly from the cache",
			ConstLabels: constLabels,
		}),
		pulls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "producer_pulls_total",
			Help:        "Values consumed from the producer",
			ConstLabels: constLabels,
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "cache_size",
			Help:        "Number of cached values",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.pulls, a.size)
	return a
}

// Hit increments the cache hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Pull increments the producer pull counter.
func (a *Adapter) Pull() { a.pulls.Inc() }

// Size updates the cache size gauge.
func (a *Adapter) Size(entries int) { a.size.Set(float64(entries)) }

var _ lazyseq.Metrics = (*Adapter)(nil)
