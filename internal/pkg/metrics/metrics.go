package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector of the service; tests read values from it.
var Registry = prometheus.NewRegistry()

var (
	DraftPulls = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_config_draft_pulls_total",
			Help: "Draft loads partitioned by the store that answered.",
		},
		[]string{"source"},
	)
	RemotePushes = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_config_remote_pushes_total",
			Help: "Asynchronous remote draft writes partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	PendingRetries = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pass_config_pending_retries_total",
			Help: "Pending sessions retried by the poller or an explicit recheck.",
		},
	)
	ArtifactsMerged = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pass_config_artifacts_merged_total",
			Help: "Template artifacts newly merged into draft artifact caches.",
		},
	)
	Promotions = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_config_promotions_total",
			Help: "Draft promotions partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	OrphanArtifactsRemoved = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "pass_config_orphan_artifacts_removed_total",
			Help: "Template artifacts deleted because nothing references them.",
		},
	)
	EventsPublished = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_config_events_published_total",
			Help: "Outbound events partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	HTTPRequests = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "pass_config_http_requests_total",
			Help: "HTTP requests partitioned by route and status class.",
		},
		[]string{"route", "status"},
	)
)

const (
	SourceLocalPending = "local_pending"
	SourceRemote       = "remote"
	SourceLocal        = "local"
	SourceDefault      = "default"

	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeSuperseded = "superseded"
	OutcomeRejected   = "rejected"
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
