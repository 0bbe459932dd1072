package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts workflow outcomes. A nil *Metrics records nothing.
type Metrics struct {
	submissions   *prometheus.CounterVec
	approved      prometheus.Counter
	registrations *prometheus.CounterVec
	storageFaults *prometheus.CounterVec
	rpcs          *prometheus.CounterVec
	rpcLatency    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the counters on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{gatherer: reg}
	m.submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "submissions_total",
		Help:      "Event submissions by outcome",
	}, []string{"outcome"})
	m.approved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "approved_events_total",
		Help:      "Pending events moved into the approved table",
	})
	m.registrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "registrations_total",
		Help:      "Event registrations by outcome",
	}, []string{"outcome"})
	m.storageFaults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "storage_faults_total",
		Help:      "Storage errors surfaced to callers, by operation",
	}, []string{"op"})

	m.rpcs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "eventboard",
		Name:      "rpcs_total",
		Help:      "Handled RPCs by method and status code",
	}, []string{"method", "code"})
	m.rpcLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "eventboard",
		Name:      "rpc_duration_seconds",
		Help:      "RPC handling time",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	reg.MustRegister(m.submissions, m.approved, m.registrations, m.storageFaults, m.rpcs, m.rpcLatency)
	return m
}

func outcome(accepted bool) string {
	if accepted {
		return "accepted"
	}
	return "rejected"
}

func (m *Metrics) Submitted(accepted bool) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome(accepted)).Inc()
}

func (m *Metrics) Approved(n int) {
	if m == nil {
		return
	}
	m.approved.Add(float64(n))
}

func (m *Metrics) Registered(accepted bool) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(outcome(accepted)).Inc()
}

func (m *Metrics) StorageFault(op string) {
	if m == nil {
		return
	}
	m.storageFaults.WithLabelValues(op).Inc()
}

func (m *Metrics) RPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcs.WithLabelValues(method, code).Inc()
	m.rpcLatency.WithLabelValues(method).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
