package observability

import (
	"context"
	"net/http"

	"github.com/aretw0/derelict/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by the lifecycle hooks.
type Metrics struct {
	registry *prometheus.Registry

	SceneVisits   *prometheus.CounterVec
	ItemsGranted  *prometheus.CounterVec
	GuardAttempts *prometheus.CounterVec
}

// NewMetrics registers the collectors in a private registry,
// so several engines in one process do not clash on the default one.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		SceneVisits: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "derelict_scene_visits_total",
				Help: "Total number of scene entries.",
			},
			[]string{"scene_id"},
		),
		ItemsGranted: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "derelict_items_granted_total",
				Help: "Total number of items added to inventories.",
			},
			[]string{"item"},
		),
		GuardAttempts: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "derelict_guard_attempts_total",
				Help: "Total number of answers submitted to guards, partitioned by outcome.",
			},
			[]string{"scene_id", "kind", "outcome"},
		),
	}
	return m
}

// Registry exposes the registry for custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Hooks returns lifecycle hooks recording into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSceneEnter: func(_ context.Context, e *domain.SceneEvent) {
			m.SceneVisits.WithLabelValues(e.SceneID).Inc()
		},
		OnItemGranted: func(_ context.Context, e *domain.ItemEvent) {
			m.ItemsGranted.WithLabelValues(e.Item).Inc()
		},
		OnGuardResolved: func(_ context.Context, e *domain.GuardEvent) {
			m.GuardAttempts.WithLabelValues(e.SceneID, string(e.Kind), string(e.Outcome)).Inc()
		},
	}
}
