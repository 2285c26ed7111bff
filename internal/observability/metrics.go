package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commitCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tablu_calendar",
		Subsystem: "interaction",
		Name:      "commits_total",
		Help:      "Number of drag/resize commits sent to the event updater, labeled by result.",
	}, []string{"result"})

	commitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tablu_calendar",
		Subsystem: "interaction",
		Name:      "commit_duration_seconds",
		Help:      "Time spent in the event updater per commit.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})

	sessionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tablu_calendar",
		Subsystem: "interaction",
		Name:      "sessions_total",
		Help:      "Number of drag/resize sessions started, labeled by kind.",
	}, []string{"kind"})

	overflowCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tablu_calendar",
		Subsystem: "layout",
		Name:      "track_overflow_events_total",
		Help:      "Number of events that did not fit a month-grid track.",
	})

	skippedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tablu_calendar",
		Subsystem: "layout",
		Name:      "invalid_events_skipped_total",
		Help:      "Number of events skipped by layout because end is not after start.",
	})

	statusGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tablu_calendar",
		Subsystem: "scheduler",
		Name:      "last_status_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful status refresh.",
	})
)

func init() {
	prometheus.MustRegister(commitCounter, commitDuration, sessionCounter, overflowCounter, skippedCounter, statusGauge)
}

// RecordCommit counts a finished commit and its latency.
func RecordCommit(err error, took time.Duration) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	commitCounter.WithLabelValues(result).Inc()
	commitDuration.Observe(took.Seconds())
}

func RecordSession(kind string) {
	sessionCounter.WithLabelValues(kind).Inc()
}

func RecordOverflow(n int) {
	if n <= 0 {
		return
	}
	overflowCounter.Add(float64(n))
}

func RecordSkipped(n int) {
	if n <= 0 {
		return
	}
	skippedCounter.Add(float64(n))
}

// RecordStatusRefresh updates the refresh watermark gauge.
func RecordStatusRefresh(ts time.Time) {
	if ts.IsZero() {
		return
	}
	statusGauge.Set(float64(ts.Unix()))
}
