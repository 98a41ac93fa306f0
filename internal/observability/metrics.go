// Package observability provides metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SwapRequestsCreated counts successfully created swap requests.
	SwapRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_swap_requests_created_total",
		Help: "Total number of swap requests created",
	})

	// SwapTransitions counts swap request state transitions by target status.
	SwapTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_transitions_total",
		Help: "Total number of swap request transitions by target status",
	}, []string{"to_status"})

	// RatingsSubmitted counts accepted rating submissions by score.
	RatingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_ratings_submitted_total",
		Help: "Total number of ratings submitted by score",
	}, []string{"score"})

	// UsersBanned counts admin ban/unban actions.
	UsersBanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_user_ban_actions_total",
		Help: "Total number of admin ban/unban actions",
	}, []string{"action"})
)
