package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentsDispatchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_labels_intents_dispatched_total",
		Help: "Total number of intents written to the outbox, by kind.",
	},
		[]string{"kind"},
	)

	ActionsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_labels_actions_rejected_total",
		Help: "Total number of label actions refused because they were not offered.",
	},
		[]string{"action"},
	)

	OutboxTasksPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_labels_outbox_tasks_published_total",
		Help: "Total number of outbox tasks delivered to the broker.",
	})

	OutboxTasksFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipping_labels_outbox_tasks_failed_total",
		Help: "Total number of outbox task delivery attempts that failed.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_labels_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	StoredCardsCachedUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shipping_labels_stored_cards_cached_users",
		Help: "Current number of users with stored cards state in memory.",
	})
)
