package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_generations_completed_total",
			Help: "Total number of generation requests answered by the model",
		},
		[]string{"kind"},
	)

	GenerationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_generations_failed_total",
			Help: "Total number of generation requests that failed",
		},
		[]string{"kind"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_generation_duration_seconds",
			Help:    "Duration of the outbound model call in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
		},
		[]string{"kind"},
	)

	LeadUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_lead_uploads_total",
			Help: "Total number of lead file uploads by outcome",
		},
		[]string{"result"},
	)
)
