// Package metrics defines and registers all custom Prometheus metrics for the
// Gaeliza match API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed through the /metrics endpoint mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gaeliza"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer-token resolutions on protected routes.
// Label:
//   - result: "success" or "failure"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, labelled by result.",
	},
	[]string{"result"},
)

// ── Match metrics ─────────────────────────────────────────────────────────────

// ActionsRecordedTotal counts recorded in-match actions.
// Label:
//   - type: the action type (e.g. "goal", "point", "foul")
var ActionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_recorded_total",
		Help:      "Total number of in-match actions recorded, by action type.",
	},
	[]string{"type"},
)

// ScoreEventsAppliedTotal counts scoreboard updates.
// Label:
//   - result: "applied" or "error"
var ScoreEventsAppliedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_events_applied_total",
		Help:      "Total number of scoreboard updates, labelled by result.",
	},
	[]string{"result"},
)

// ScoreQueueDepth tracks the number of score events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ScoreQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "score_queue_depth",
		Help:      "Current number of score events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
