package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	slotPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tutorhub",
			Name:      "slot_published_total",
			Help:      "Count of availability slots published by tutors.",
		},
	)

	bookingRequested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutorhub",
			Name:      "booking_requested_total",
			Help:      "Count of booking attempts by outcome.",
		},
		[]string{"outcome"},
	)

	bookingDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutorhub",
			Name:      "booking_decision_total",
			Help:      "Count of tutor decisions over pending bookings.",
		},
		[]string{"decision"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tutorhub",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled by either party.",
		},
	)

	notificationEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tutorhub",
			Name:      "notification_emitted_total",
			Help:      "Count of notifications emitted by event type.",
		},
		[]string{"event_type"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(slotPublished, bookingRequested, bookingDecision, bookingCancelled, notificationEmitted)
	})
}

func IncSlotPublished() {
	slotPublished.Inc()
}

func IncBookingRequested(outcome string) {
	bookingRequested.WithLabelValues(outcome).Inc()
}

func IncBookingDecision(decision string) {
	bookingDecision.WithLabelValues(decision).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncNotificationEmitted(eventType string) {
	notificationEmitted.WithLabelValues(eventType).Inc()
}
