package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	analysisStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_started_total",
		Help: "Total analyses started",
	})
	analysisCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_completed_total",
		Help: "Total analyses completed",
	})
	analysisFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analysis_failed_total",
		Help: "Total analyses failed",
	})
	analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_duration_ms",
		Help:    "Analysis duration in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
	analysisTotalScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_total_score",
		Help:    "Distribution of resume total scores",
		Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	})
	versionsAppendedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "versions_appended_total",
		Help: "Versions appended by store backend",
	}, []string{"store"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		analysisStartedTotal,
		analysisCompletedTotal,
		analysisFailedTotal,
		analysisDuration,
		analysisTotalScore,
		versionsAppendedTotal,
	)
}

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Inc()
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Inc()
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Inc()
}

// ObserveAnalysisDurationMs records an analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// ObserveTotalScore records the total score of a finished analysis.
func ObserveTotalScore(total int) {
	analysisTotalScore.Observe(float64(total))
}

// IncVersionAppended counts a version written to the named store.
func IncVersionAppended(store string) {
	versionsAppendedTotal.WithLabelValues(store).Inc()
}

// Registry exposes the collector registry.
func Registry() *prometheus.Registry {
	return registry
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
