package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented forwards to another allocator and exports its activity as
// Prometheus metrics:
//
//	<namespace>_alloc_live_bytes        gauge
//	<namespace>_alloc_operations_total  counter, label op = alloc|realloc|free
//	<namespace>_alloc_failures_total    counter
type Instrumented struct {
	next     Allocator
	live     prometheus.Gauge
	ops      *prometheus.CounterVec
	failures prometheus.Counter
}

var _ Allocator = (*Instrumented)(nil)

// NewInstrumented wraps next and registers its collectors with reg.
// A nil next is replaced by Heap; a nil reg leaves the collectors
// unregistered.
func NewInstrumented(next Allocator, reg prometheus.Registerer, namespace string) (*Instrumented, error) {
	in := &Instrumented{
		next: Default(next),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alloc_live_bytes",
			Help:      "Bytes currently reserved through the allocator.",
		}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alloc_operations_total",
			Help:      "Admitted allocator operations by kind.",
		}, []string{"op"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alloc_failures_total",
			Help:      "Allocator requests that were rejected.",
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{in.live, in.ops, in.failures} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return in, nil
}

func (in *Instrumented) Alloc(size int) error {
	if err := in.next.Alloc(size); err != nil {
		in.failures.Inc()
		return err
	}
	in.ops.WithLabelValues("alloc").Inc()
	in.live.Add(float64(size))
	return nil
}

func (in *Instrumented) Realloc(oldSize, newSize int) error {
	if err := in.next.Realloc(oldSize, newSize); err != nil {
		in.failures.Inc()
		return err
	}
	in.ops.WithLabelValues("realloc").Inc()
	in.live.Add(float64(newSize - oldSize))
	return nil
}

func (in *Instrumented) Free(size int) {
	in.next.Free(size)
	in.ops.WithLabelValues("free").Inc()
	in.live.Sub(float64(size))
}
