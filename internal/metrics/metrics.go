package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Placement outcomes used as the "result" label
const (
	ResultAccepted = "accepted"
	ResultTooLow   = "too_low"
	ResultClosed   = "closed"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	BidPlacements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auction",
		Name:      "bid_placements_total",
		Help:      "Bid placement attempts by outcome.",
	}, []string{"result"})

	PlacementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "auction",
		Name:      "bid_placement_duration_seconds",
		Help:      "Time spent placing a bid, lock wait included.",
		Buckets:   prometheus.DefBuckets,
	})

	OrphanedBids = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auction",
		Name:      "orphaned_bids_total",
		Help:      "Bids committed to the ledger whose product link failed.",
	})

	ReconciledBids = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "auction",
		Name:      "reconciled_bids_total",
		Help:      "Orphaned bids re-linked by the reconciler.",
	})

	FanoutDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auction",
		Name:      "fanout_dropped_total",
		Help:      "Notifications dropped by stage.",
	}, []string{"stage"})

	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "auction",
		Name:      "live_subscribers",
		Help:      "Connected real-time observers.",
	})
)
