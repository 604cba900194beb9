package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "bookings_created_total",
			Help:      "Reservations created.",
		},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "bookings_rejected_total",
			Help:      "Bookings rejected by reason.",
		},
		[]string{"reason"},
	)

	checkoutSessions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "checkout_sessions_total",
			Help:      "Hosted checkout sessions opened.",
		},
	)

	paymentsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_reservation",
			Name:      "payments_confirmed_total",
			Help:      "Checkout success callbacks handled.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingsRejected, checkoutSessions, paymentsConfirmed)
	})
}

func IncBookingCreated() { bookingsCreated.Inc() }

// IncBookingRejected counts a rejection with its reason label.
func IncBookingRejected(reason string) { bookingsRejected.WithLabelValues(reason).Inc() }

func IncCheckoutSession() { checkoutSessions.Inc() }

func IncPaymentConfirmed() { paymentsConfirmed.Inc() }
