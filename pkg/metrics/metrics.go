package metrics

import (
	"net/http"

	"github.com/chris/bidding-wars/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the auction core's Prometheus counters. A nil *Metrics records nothing.
type Metrics struct {
	Registry     *prometheus.Registry
	bids         *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	reconciled   *prometheus.CounterVec
	payoutLegs   *prometheus.CounterVec
	bidConflicts prometheus.Counter
}

// New registers the counters on a fresh registry together with the Go and process collectors.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	bids := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bids_total",
		Help:      "Bids placed, by outcome.",
	}, []string{"outcome"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auction_transitions_total",
		Help:      "Auction status transitions, by target status.",
	}, []string{"status"})
	reconciled := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_reconciliations_total",
		Help:      "Reconciliation runs, by outcome.",
	}, []string{"outcome"})
	payoutLegs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payout_legs_total",
		Help:      "Payout legs attempted, by recipient role and result.",
	}, []string{"role", "status"})
	bidConflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bid_write_conflicts_total",
		Help:      "Bid writes lost to a concurrent update and retried.",
	})

	registry.MustRegister(
		bids,
		transitions,
		reconciled,
		payoutLegs,
		bidConflicts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		Registry:     registry,
		bids:         bids,
		transitions:  transitions,
		reconciled:   reconciled,
		payoutLegs:   payoutLegs,
		bidConflicts: bidConflicts,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) BidAccepted() {
	if m == nil {
		return
	}
	m.bids.WithLabelValues("accepted").Inc()
}

// BidRejected counts a rejection under its reason code.
func (m *Metrics) BidRejected(reason string) {
	if m == nil {
		return
	}
	m.bids.WithLabelValues(reason).Inc()
}

func (m *Metrics) BidConflict() {
	if m == nil {
		return
	}
	m.bidConflicts.Inc()
}

func (m *Metrics) Transition(to models.AuctionStatus) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(to)).Inc()
}

func (m *Metrics) Reconciled(outcome string) {
	if m == nil {
		return
	}
	m.reconciled.WithLabelValues(outcome).Inc()
}

func (m *Metrics) PayoutLeg(role models.PayoutRole, status models.LegStatus) {
	if m == nil {
		return
	}
	m.payoutLegs.WithLabelValues(string(role), string(status)).Inc()
}
