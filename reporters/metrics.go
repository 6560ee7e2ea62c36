package reporters

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gobench-dev/gobench"
)

// Metrics reports results as Prometheus gauges, one observation per Run,
// so a running gobench process can be scraped the way
// jinterlante1206-AleutianLocal exposes application metrics via
// prometheus/client_golang. It is registered against a caller-supplied
// *prometheus.Registry rather than the global default, so multiple
// Orchestrator runs in one process don't collide on metric registration.
type Metrics struct {
	registry *prometheus.Registry

	realTime   *prometheus.GaugeVec
	cpuTime    *prometheus.GaugeVec
	iterations *prometheus.GaugeVec
	bytesPerS  *prometheus.GaugeVec
	itemsPerS  *prometheus.GaugeVec
	errors     *prometheus.CounterVec
}

// NewMetrics constructs a Metrics reporter and registers its collectors
// with registry.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		realTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gobench_real_time_seconds",
			Help: "Chosen-time-basis elapsed seconds for the most recent Run of a benchmark.",
		}, []string{"name"}),
		cpuTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gobench_cpu_time_seconds",
			Help: "CPU seconds summed across threads for the most recent Run of a benchmark.",
		}, []string{"name"}),
		iterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gobench_iterations_total",
			Help: "Iterations summed across threads for the most recent Run of a benchmark.",
		}, []string{"name"}),
		bytesPerS: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gobench_bytes_per_second",
			Help: "Bytes processed per second for the most recent Run of a benchmark.",
		}, []string{"name"}),
		itemsPerS: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gobench_items_per_second",
			Help: "Items processed per second for the most recent Run of a benchmark.",
		}, []string{"name"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gobench_errors_total",
			Help: "Count of Run records reporting an error, by benchmark name.",
		}, []string{"name"}),
	}
	registry.MustRegister(m.realTime, m.cpuTime, m.iterations, m.bytesPerS, m.itemsPerS, m.errors)
	return m
}

func (m *Metrics) ReportContext(gobench.ReportContext) bool { return true }

func (m *Metrics) ReportRuns(runs []gobench.Run) {
	for _, r := range runs {
		if r.Error {
			m.errors.WithLabelValues(r.Name).Inc()
			continue
		}
		m.realTime.WithLabelValues(r.Name).Set(r.RealTime.Seconds())
		m.cpuTime.WithLabelValues(r.Name).Set(r.CPUTime.Seconds())
		m.iterations.WithLabelValues(r.Name).Set(float64(r.Iterations))
		if r.BytesPerSecond > 0 {
			m.bytesPerS.WithLabelValues(r.Name).Set(r.BytesPerSecond)
		}
		if r.ItemsPerSecond > 0 {
			m.itemsPerS.WithLabelValues(r.Name).Set(r.ItemsPerSecond)
		}
	}
}

// Finalize is a no-op; the registry is scraped asynchronously by an HTTP
// handler set up by the caller (see cmd/gobench).
func (m *Metrics) Finalize() {}
