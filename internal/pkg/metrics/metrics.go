package metrics

import (
	"fleetsync/internal/domain/reconcile"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles the service's Prometheus collectors so fx can hand one
// instance to the usecases and the /metrics handler.
type Registry struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	syncRuns      prometheus.Counter
	syncInserts   *prometheus.CounterVec
	syncUpdates   *prometheus.CounterVec
	syncWarnings  prometheus.Counter
	alertProposed prometheus.Counter
	alertCreated  prometheus.Counter
}

func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		Registerer: reg,
		Gatherer:   reg,
		syncRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetsync_reconcile_runs_total",
			Help: "Number of snapshot reconciliations executed.",
		}),
		syncInserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetsync_reconcile_inserts_total",
			Help: "Records staged as inserts, by entity type.",
		}, []string{"entity"}),
		syncUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetsync_reconcile_updates_total",
			Help: "Records staged as updates, by entity type.",
		}, []string{"entity"}),
		syncWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetsync_reconcile_warnings_total",
			Help: "Records skipped with a warning during reconciliation.",
		}),
		alertProposed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetsync_alert_intents_proposed_total",
			Help: "Notification intents proposed by sweeps.",
		}),
		alertCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fleetsync_alert_notifications_created_total",
			Help: "Notifications actually created after dedupe.",
		}),
	}

	reg.MustRegister(
		r.syncRuns, r.syncInserts, r.syncUpdates, r.syncWarnings,
		r.alertProposed, r.alertCreated,
	)
	return r
}

func (r *Registry) ObserveSync(s reconcile.Summary) {
	r.syncRuns.Inc()
	r.syncInserts.WithLabelValues("equipment").Add(float64(len(s.Equipment.Inserted)))
	r.syncInserts.WithLabelValues("inventory").Add(float64(len(s.Inventory.Inserted)))
	r.syncInserts.WithLabelValues("maintenance").Add(float64(len(s.Maintenance.Inserted)))
	r.syncUpdates.WithLabelValues("equipment").Add(float64(len(s.Equipment.Updated)))
	r.syncUpdates.WithLabelValues("inventory").Add(float64(len(s.Inventory.Updated)))
	r.syncUpdates.WithLabelValues("maintenance").Add(float64(len(s.Maintenance.Updated)))
	r.syncWarnings.Add(float64(len(s.Warnings)))
}

func (r *Registry) ObserveSweep(proposed, created int) {
	r.alertProposed.Add(float64(proposed))
	r.alertCreated.Add(float64(created))
}
