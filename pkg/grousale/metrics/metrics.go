// Package metrics exposes Prometheus counters for group-buy activity.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "grousale"

// Join outcomes recorded on GroupJoins
const (
	JoinResultJoined        = "joined"
	JoinResultAlreadyJoined = "already_joined"
	JoinResultFull          = "full"
	JoinResultExpired       = "expired"
)

var (
	GroupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_created_total",
		Help:      "Number of group-buy offers created.",
	})

	GroupJoins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "group_joins_total",
		Help:      "Join attempts on existing groups, by outcome.",
	}, []string{"result"})

	GroupsFilled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_filled_total",
		Help:      "Number of groups that reached their target size.",
	})

	GroupsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_expired_total",
		Help:      "Number of active groups transitioned to expired.",
	})

	DiscountsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discounts_applied_total",
		Help:      "Number of successful discount confirmations.",
	})
)

// Handler serves the default Prometheus registry
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
