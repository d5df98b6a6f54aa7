// Package metrics defines all custom Prometheus metrics for the Elevare
// platform API. It is the single source of truth for metric names, labels,
// and help strings; echoprometheus adds the generic request metrics on top.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "elevare"

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EnrollmentsTotal counts course enrollments recorded on user aggregates.
var EnrollmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of course enrollments.",
	},
)

// ApplicationsTotal counts internship applications recorded on user aggregates.
var ApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of internship applications.",
	},
)

// SessionsBookedTotal counts mentorship session bookings.
var SessionsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_booked_total",
		Help:      "Total number of mentorship sessions booked.",
	},
)

// DuplicateEntriesTotal counts rejected duplicate sub-collection writes.
// Label:
//   - kind: "enrollment", "application" or "session"
var DuplicateEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_entries_total",
		Help:      "Total number of mutations rejected for duplicate unique keys.",
	},
	[]string{"kind"},
)
