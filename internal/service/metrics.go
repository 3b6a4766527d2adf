package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters exposed next to the HTTP metrics on /metrics.
var (
	paymentsAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "payments_applied_total",
		Help:      "Total number of payments applied to invoices",
	})

	announcementsRegeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "announcements_regenerated_total",
		Help:      "Total number of announcement regeneration passes",
	})
)
