// Package metrics defines and registers all custom Prometheus metrics for the
// task tracker. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasktracker"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
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

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly added tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks added, by priority.",
	},
	[]string{"priority"},
)

// TasksCompletedTotal counts transitions to the completed state.
var TasksCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks marked completed.",
	},
)

// TaskMutationsTotal counts write operations on the task store.
// Label:
//   - action: "updated", "toggled", or "deleted"
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of task store mutations, by action.",
	},
	[]string{"action"},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportDuration measures how long a single aggregation pass takes.
// Label:
//   - kind: "stats" or "weekly"
var ReportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of report aggregation over a user's task list.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)

// ── Storage metrics ───────────────────────────────────────────────────────────

// StorageReadErrorsTotal counts reads that returned corrupt or unreadable
// data and were recovered as empty collections.
// Label:
//   - key: the storage key that failed ("users", "session", "tasks")
var StorageReadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_read_errors_total",
		Help:      "Total number of storage reads recovered as empty, by key.",
	},
	[]string{"key"},
)
