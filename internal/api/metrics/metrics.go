// Package metrics defines and registers all custom Prometheus metrics for
// the project portal API. It is the single source of truth for metric
// names, labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

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

// AccessDeniedTotal counts requests rejected by the access-control rules.
// Label:
//   - reason: "unauthenticated" or "forbidden"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// ProjectsCreatedTotal counts newly created projects.
// Label:
//   - status: initial project status ("active", "in_progress", "done")
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by initial status.",
	},
	[]string{"status"},
)

// CommentsCreatedTotal counts posted comments.
// Label:
//   - author_role: "admin" or "client"
var CommentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments posted, by author role.",
	},
	[]string{"author_role"},
)

// MilestonesCreatedTotal counts created milestones.
var MilestonesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "milestones_created_total",
		Help:      "Total number of milestones created.",
	},
)

// OwnerCacheTotal counts ownership cache lookups.
// Label:
//   - result: "hit" or "miss"
var OwnerCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "owner_cache_total",
		Help:      "Total number of project-owner cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
