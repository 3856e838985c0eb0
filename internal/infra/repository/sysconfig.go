package repository

import (
	"context"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/infra"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type systemConfigRow struct {
	CriticalThreshold   float64 `db:"critical_threshold"`
	PreventiveThreshold float64 `db:"preventive_threshold"`
}

// ConfigRepository persists the threshold pair. Load always hits the
// store: thresholds must be read fresh per reconciliation run.
type ConfigRepository struct {
	db DBTX
}

func NewConfigRepository(db DBTX) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Load(ctx context.Context) (alert.Policy, error) {
	var row systemConfigRow
	err := pgxscan.Get(ctx, r.db, &row, `
		SELECT critical_threshold, preventive_threshold
		FROM system_config
		WHERE id = 1`)
	if err != nil {
		if pgxscan.NotFound(err) {
			return alert.DefaultPolicy(), nil
		}
		return alert.Policy{}, infra.WrapRepoErr("failed to load system config", err)
	}

	// Stored values are re-normalized on read; a clamp here means the row
	// was written by an older version that skipped validation.
	policy, _ := alert.NewPolicy(row.CriticalThreshold, row.PreventiveThreshold)
	return policy, nil
}

func (r *ConfigRepository) Save(ctx context.Context, p alert.Policy) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO system_config (id, critical_threshold, preventive_threshold, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE SET
			critical_threshold = EXCLUDED.critical_threshold,
			preventive_threshold = EXCLUDED.preventive_threshold,
			updated_at = now()`,
		p.Critical, p.Preventive)
	if err != nil {
		return infra.WrapRepoErr("failed to save system config", err)
	}
	return nil
}
