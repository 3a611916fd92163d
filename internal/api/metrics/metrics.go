// Package metrics defines and registers the custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings; metrics register themselves with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "email_in_use", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "wrong_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Listing and booking metrics ───────────────────────────────────────────────

// HousesCreatedTotal counts newly created listings.
var HousesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "houses_created_total",
		Help:      "Total number of listings created.",
	},
)

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// HouseSearchesTotal counts public listing searches.
// Label:
//   - filtered: "yes" when at least one filter was set, else "no"
var HouseSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "house_searches_total",
		Help:      "Total number of public listing searches.",
	},
	[]string{"filtered"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivitiesRecordedTotal counts audit activities successfully persisted.
// Labels:
//   - collection: "houses" or "bookedHouses"
//   - action: "created", "updated", or "deleted"
var ActivitiesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_recorded_total",
		Help:      "Total number of audit activities persisted.",
	},
	[]string{"collection", "action"},
)

// ActivitiesDedupTotal counts deduplication decisions in the activity pipeline.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new activity, processed)
var ActivitiesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_dedup_total",
		Help:      "Total number of activity deduplication checks, by result.",
	},
	[]string{"result"},
)

// ActivitiesErrorsTotal counts activities that failed processing.
// Label:
//   - reason: short description of the failure ("insert_failed", "dedup_failed")
var ActivitiesErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_errors_total",
		Help:      "Total number of audit activities that failed processing.",
	},
	[]string{"reason"},
)
