package conflict

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the detector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	slotConflicts *prometheus.CounterVec
}

// NewMetrics registers the detector collectors on reg. Collectors already
// registered under the same name are reused, so building several detectors
// against one registry is safe.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	fetchTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "temporal",
			Subsystem: "conflict",
			Name:      "calendar_fetch_total",
			Help:      "Calendar fetches per date, by outcome.",
		},
		[]string{"outcome"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "temporal",
			Subsystem: "conflict",
			Name:      "calendar_fetch_duration_seconds",
			Help:      "Latency of calendar free/busy calls.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	slotConflicts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "temporal",
			Subsystem: "conflict",
			Name:      "slot_conflicts_total",
			Help:      "Conflicting slots found, by status.",
		},
		[]string{"status"},
	)

	if err := reg.Register(fetchTotal); err != nil {
		fetchTotal = existing(err).(*prometheus.CounterVec)
	}
	if err := reg.Register(fetchDuration); err != nil {
		fetchDuration = existing(err).(prometheus.Histogram)
	}
	if err := reg.Register(slotConflicts); err != nil {
		slotConflicts = existing(err).(*prometheus.CounterVec)
	}

	return &Metrics{
		fetchTotal:    fetchTotal,
		fetchDuration: fetchDuration,
		slotConflicts: slotConflicts,
	}
}

// existing returns the collector behind an AlreadyRegisteredError and panics on anything else.
func existing(err error) prometheus.Collector {
	if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return already.ExistingCollector
	}
	panic(err)
}

// ObserveFetch counts one date outcome. elapsed is recorded when a call was made.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(outcome).Inc()
	if elapsed > 0 {
		m.fetchDuration.Observe(elapsed.Seconds())
	}
}

// IncSlotConflict counts one conflicting slot.
func (m *Metrics) IncSlotConflict(status string) {
	if m == nil {
		return
	}
	m.slotConflicts.WithLabelValues(status).Inc()
}
