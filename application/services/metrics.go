package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollTicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_poll_ticks_total",
		Help: "Number of poller passes executed.",
	})
	reconcilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_reconciles_total",
		Help: "Number of generation records reconciled against the vendor.",
	})
	reconcileFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_reconcile_failures_total",
		Help: "Number of reconciliations that failed and were deferred to the next tick.",
	})
	generationsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "video_generations_submitted_total",
		Help: "Number of generation jobs submitted to the vendor.",
	})
	generationsCompletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_generations_finished_total",
		Help: "Number of generation records that reached a terminal status.",
	}, []string{"status"})
)
