package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters for campaign dispatch and bulk ingestion.
var (
	EmailsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_emails_sent_total",
		Help: "Campaign emails handed to the mail transport successfully",
	})

	EmailsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_emails_failed_total",
		Help: "Campaign emails whose send attempt returned an error",
	})

	SubscribersIngestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "subscribers_ingested_total",
		Help: "Subscribers accepted through bulk email upload",
	})

	IngestBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_batches_total",
		Help: "Bulk upload batch writes by result",
	}, []string{"result"}) // result: ok|failed
)

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
