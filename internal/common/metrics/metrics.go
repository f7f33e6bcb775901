// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_submissions_total",
			Help: "Total number of application submissions by outcome",
		},
		[]string{"outcome"},
	)

	CorrectionRoundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "client_correction_rounds_total",
			Help: "Total number of field correction rounds",
		},
	)

	ResumeUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_resume_uploads_total",
			Help: "Total number of resume uploads by status",
		},
		[]string{"status"},
	)

	ProfileSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_profile_saves_total",
			Help: "Total number of profile persistence attempts by status",
		},
		[]string{"status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "client_api_request_duration_seconds",
			Help: "Duration of backend API requests in seconds",
		},
		[]string{"endpoint"},
	)
)
