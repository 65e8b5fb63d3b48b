// Package metrics defines and registers all custom Prometheus metrics for the
// pet-adoption API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via promauto;
// the /metrics route is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petadoption"

// PetsCreatedTotal counts newly created pet listings.
// Label:
//   - category: the listing category (e.g. "dog", "cat")
var PetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pets_created_total",
		Help:      "Total number of pet listings created, by category.",
	},
	[]string{"category"},
)

// AdoptionRequestsTotal counts adoption-request submissions.
// Label:
//   - result: "created" or "duplicate"
var AdoptionRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adoption_requests_total",
		Help:      "Total number of adoption request submissions, by result.",
	},
	[]string{"result"},
)

// PaymentIntentsTotal counts payment-intent creations against the processor.
// Label:
//   - outcome: "created" or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creations, by outcome.",
	},
	[]string{"outcome"},
)
