package lazyseq

// Metrics exposes sequence-level observability hooks. A NopMetrics
// implementation is provided and used by default; see the metrics/prom
// subpackage for a Prometheus adapter.
type Metrics interface {
	// Hit records an index access served directly from the cache.
	Hit()
	// Pull records one value consumed from the producer.
	Pull()
	// Size reports the cache length after it grows.
	Size(entries int)
}

// NopMetrics is a drop-in Metrics implementation that does nothing.
type NopMetrics struct{}

func (NopMetrics) Hit()     {}
func (NopMetrics) Pull()    {}
func (NopMetrics) Size(int) {}

var _ Metrics = NopMetrics{}
