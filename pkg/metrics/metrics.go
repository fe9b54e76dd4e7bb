package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// End-to-end analysis latency (ms), dominated by the summarizer call.
	AnalysisDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_analysis_duration_ms",
			Help:    "Full email analysis pipeline duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 12), // 10ms to ~40s
		},
		[]string{"status"},
	)

	// Summarization model call latency (ms).
	SummarizerCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarizer_call_latency_ms",
			Help:    "Summarization API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"model", "status"},
	)

	// MQ consume latency (ms).
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)

	// Analyzed email counter by final urgency label.
	EmailAnalyzedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_analyzed_count",
			Help: "Total number of emails analyzed",
		},
		[]string{"urgency"}, // URGENT, NON-URGENT
	)

	// Failed analyses, counted separately so urgency aggregations stay
	// label-clean.
	EmailAnalysisFailedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "email_analysis_failed_count",
			Help: "Total number of failed email analyses",
		},
	)
)

// RecordAnalysisDuration records one pipeline run.
func RecordAnalysisDuration(status string, duration time.Duration) {
	AnalysisDuration.WithLabelValues(status).Observe(float64(duration.Milliseconds()))
}

// RecordSummarizerLatency records one summarization call.
func RecordSummarizerLatency(model, status string, duration time.Duration) {
	SummarizerCallLatency.WithLabelValues(model, status).Observe(float64(duration.Milliseconds()))
}

// RecordMQConsumeLatency records one consumed message.
func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}

// IncrementEmailAnalyzed bumps the analyzed counter for an urgency label.
func IncrementEmailAnalyzed(urgency string) {
	EmailAnalyzedCount.WithLabelValues(urgency).Inc()
}

// IncrementEmailAnalysisFailed bumps the failed-analysis counter.
func IncrementEmailAnalysisFailed() {
	EmailAnalysisFailedCount.Inc()
}
