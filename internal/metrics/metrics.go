package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_submissions_stored_total",
			Help: "Total number of submissions durably stored",
		},
		[]string{"kind"},
	)

	submissionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_submissions_rejected_total",
			Help: "Total number of submissions rejected before storage",
		},
		[]string{"reason"},
	)

	emailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_emails_sent_total",
			Help: "Total number of notification emails sent successfully",
		},
		[]string{"type"},
	)

	emailsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_emails_failed_total",
			Help: "Total number of failed notification email sends",
		},
		[]string{"type"},
	)
)

// Rejection reasons.
const (
	ReasonInvalidJSON = "invalid_json"
	ReasonValidation  = "validation"
	ReasonBot         = "bot"
	ReasonStoreError  = "store_error"
)

// Email message types.
const (
	EmailStaffAlert = "staff_alert"
	EmailAutoReply  = "auto_reply"
)

func RecordSubmissionStored(kind string) {
	submissionsStoredTotal.WithLabelValues(kind).Inc()
}

func RecordSubmissionRejected(reason string) {
	submissionsRejectedTotal.WithLabelValues(reason).Inc()
}

func RecordEmailSent(msgType string) {
	emailsSentTotal.WithLabelValues(msgType).Inc()
}

func RecordEmailFailed(msgType string) {
	emailsFailedTotal.WithLabelValues(msgType).Inc()
}
