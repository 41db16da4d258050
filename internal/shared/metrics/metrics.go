// Package metrics exposes Prometheus instrumentation for the analysis pipeline.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "researchspark"

var (
	analysesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_started_total",
		Help:      "Total analysis requests started.",
	})
	analysesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_completed_total",
		Help:      "Total analyses completed successfully.",
	})
	analysesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_failed_total",
		Help:      "Total analyses that ended in an error.",
	})
	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Wall-clock duration of one analysis lifecycle.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 120},
	})
	credentialProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_probes_total",
		Help:      "Credential validation probes by outcome.",
	}, []string{"outcome"})
	extractions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extractions_total",
		Help:      "Upload text extractions by outcome.",
	}, []string{"outcome"})
	literatureRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "literature_requests_total",
		Help:      "Literature index lookups by operation and outcome.",
	}, []string{"op", "outcome"})
)

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysesStarted.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysesCompleted.Inc()
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysesFailed.Inc()
}

// ObserveAnalysisDuration records the duration of one analysis lifecycle.
func ObserveAnalysisDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	analysisDuration.Observe(d.Seconds())
}

// IncCredentialProbe records a credential probe outcome.
func IncCredentialProbe(ok bool) {
	credentialProbes.WithLabelValues(outcome(ok)).Inc()
}

// IncExtraction records an upload extraction outcome.
func IncExtraction(ok bool) {
	extractions.WithLabelValues(outcome(ok)).Inc()
}

// IncLiteratureRequest records a literature index lookup outcome.
func IncLiteratureRequest(op string, ok bool) {
	literatureRequests.WithLabelValues(op, outcome(ok)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
