package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spotted_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ClaimsSubmitted counts accepted claim submissions by verification tier.
	ClaimsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spotted_claims_submitted_total",
		Help: "Total number of claims bound to a conversation, by tier",
	}, []string{"tier"})

	// ClaimsRejected counts rejected claim submissions by rejection reason code.
	ClaimsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spotted_claims_rejected_total",
		Help: "Total number of rejected claim submissions by reason",
	}, []string{"reason"})

	// NotificationsRecorded counts match notifications recorded for new posts.
	NotificationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spotted_match_notifications_recorded_total",
		Help: "Total number of match notifications recorded",
	})

	// NotificationTargets observes the audience size computed per post.
	NotificationTargets = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "spotted_match_notification_targets",
		Help:    "Number of users selected for a match alert per post",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)
