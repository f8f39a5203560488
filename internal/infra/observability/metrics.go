package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/boddenberg/money-bfa-go/internal/domain"
)

// Submission outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected" // failed validation, never reached the provider
)

// Metrics holds all Prometheus metrics for the BFA.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	summariesComputed *prometheus.CounterVec
	externalErrors    *prometheus.CounterVec
	cacheHits         *prometheus.CounterVec
	cacheMisses       *prometheus.CounterVec
	submissions       *prometheus.CounterVec
	alertsDismissed   prometheus.Counter
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "money_bfa_operation_duration_seconds",
				Help:    "Duration of service operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		summariesComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_bfa_summaries_computed_total",
				Help: "Summaries recomputed from raw collections, by domain.",
			},
			[]string{"domain"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_bfa_external_errors_total",
				Help: "Total errors from the data provider.",
			},
			[]string{"service"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_bfa_cache_hits_total",
				Help: "Total summary cache hits.",
			},
			[]string{"domain"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_bfa_cache_misses_total",
				Help: "Total summary cache misses.",
			},
			[]string{"domain"},
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "money_bfa_submissions_total",
				Help: "Mutations handed to the data provider, by resource and outcome.",
			},
			[]string{"resource", "outcome"},
		),
		alertsDismissed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "money_bfa_alerts_dismissed_total",
				Help: "Alerts dismissed by users.",
			},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrSummary counts one summary computation.
func (m *Metrics) IncrSummary(domainName string) {
	m.summariesComputed.WithLabelValues(domainName).Inc()
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(domainName string) {
	m.cacheHits.WithLabelValues(domainName).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(domainName string) {
	m.cacheMisses.WithLabelValues(domainName).Inc()
}

// IncrSubmission counts a mutation attempt.
func (m *Metrics) IncrSubmission(resource, outcome string) {
	m.submissions.WithLabelValues(resource, outcome).Inc()
}

// IncrAlertDismissed counts a dismissal.
func (m *Metrics) IncrAlertDismissed() {
	m.alertsDismissed.Inc()
}

// Snapshot returns the module counters for GET /v1/metrics/money.
func (m *Metrics) Snapshot() *domain.ModuleMetrics {
	hits := sumCounterVec(m.cacheHits)
	misses := sumCounterVec(m.cacheMisses)
	submitted := sumCounterVec(m.submissions)
	failed := sumByLabel(m.submissions, "outcome", OutcomeFailure)

	snap := &domain.ModuleMetrics{
		SummariesComputed: int64(sumCounterVec(m.summariesComputed)),
		Submissions:       int64(submitted),
		ExternalErrors:    int64(sumCounterVec(m.externalErrors)),
		AlertsDismissed:   int64(counterValue(m.alertsDismissed)),
		Period:            "all_time",
	}
	if hits+misses > 0 {
		snap.CacheHitRate = hits / (hits + misses)
	}
	if submitted > 0 {
		snap.SubmissionFailureRate = failed / submitted
	}
	return snap
}

// counterValue extracts the current float64 value of a single counter.
func counterValue(c prometheus.Metric) float64 {
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

// sumCounterVec adds up every child of a CounterVec.
func sumCounterVec(cv *prometheus.CounterVec) float64 {
	return sumByLabel(cv, "", "")
}

// sumByLabel adds up the children whose label name has value. An empty
// name matches every child.
func sumByLabel(cv *prometheus.CounterVec, name, value string) float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		cv.Collect(ch)
		close(ch)
	}()

	var total float64
	for metric := range ch {
		m := &dto.Metric{}
		if err := metric.Write(m); err != nil || m.Counter == nil {
			continue
		}
		if name != "" && !hasLabel(m, name, value) {
			continue
		}
		total += m.Counter.GetValue()
	}
	return total
}

func hasLabel(m *dto.Metric, name, value string) bool {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}
