package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GenerationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codedoctor_generation_requests_total",
			Help: "Generation requests forwarded upstream, by model",
		},
		[]string{"model"},
	)
	GenerationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "codedoctor_generation_duration_seconds",
			Help:    "Wall time of one blocking generation call",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s..256s
		},
	)
	UpstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codedoctor_upstream_failures_total",
			Help: "Failed upstream calls by failure class",
		},
		[]string{"kind"}, // kind: unavailable|timeout|upstream|empty
	)
	RejectedUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codedoctor_rejected_uploads_total",
			Help: "Uploads rejected before any upstream call",
		},
		[]string{"reason"}, // reason: no_filename|too_large|not_text|empty
	)
)

func init() {
	prometheus.MustRegister(
		GenerationRequests,
		GenerationDurationSeconds,
		UpstreamFailures,
		RejectedUploads,
	)
}

func IncGenerationRequest(model string) {
	GenerationRequests.WithLabelValues(model).Inc()
}

func ObserveGenerationDuration(d time.Duration) {
	GenerationDurationSeconds.Observe(d.Seconds())
}

func IncUpstreamFailure(kind string) {
	UpstreamFailures.WithLabelValues(kind).Inc()
}

func IncRejectedUpload(reason string) {
	RejectedUploads.WithLabelValues(reason).Inc()
}

// Handler exposes the registry for mounting on the API mux.
func Handler() http.Handler {
	return promhttp.Handler()
}
