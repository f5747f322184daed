package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_api_predictions_created_total",
		Help: "Total number of prediction records stored.",
	})
	PredictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_api_predictions_failed_total",
		Help: "Total number of rejected or failed prediction inserts.",
	})
	HistoryRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_api_history_requests_total",
		Help: "Total number of history list requests served.",
	})
	HistoryCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campaign_api_history_cache_hits_total",
		Help: "Total number of history requests answered from Redis.",
	})
)
