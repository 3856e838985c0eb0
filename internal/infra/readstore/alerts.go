package readstore

import (
	"context"
	"time"

	"fleetsync/internal/infra"
	"fleetsync/internal/infra/repository"
	"fleetsync/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type AlertReadStore struct {
	db repository.DBTX
}

func NewAlertReadStore(db repository.DBTX) *AlertReadStore {
	return &AlertReadStore{db: db}
}

type notificationRow struct {
	ID         uuid.UUID `db:"id"`
	Kind       string    `db:"kind"`
	Severity   string    `db:"severity"`
	SubjectKey string    `db:"subject_key"`
	Ficha      *string   `db:"ficha"`
	Message    string    `db:"message"`
	Read       bool      `db:"read"`
	CreatedAt  time.Time `db:"created_at"`
}

// Open returns notifications that are neither read nor dismissed,
// most severe first, newest first within a severity.
func (s *AlertReadStore) Open(ctx context.Context, limit int32) ([]*queries.NotificationView, error) {
	var rows []notificationRow
	err := pgxscan.Select(ctx, s.db, &rows, `
		SELECT id, kind, severity, subject_key, ficha, message, read, created_at
		FROM notifications
		WHERE NOT read AND NOT dismissed
		ORDER BY CASE severity
			WHEN 'critical' THEN 0
			WHEN 'warning' THEN 1
			ELSE 2
		END, created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list open notifications", err)
	}

	views := make([]*queries.NotificationView, 0, len(rows))
	for _, row := range rows {
		view := &queries.NotificationView{
			ID:         row.ID,
			Kind:       row.Kind,
			Severity:   row.Severity,
			SubjectKey: row.SubjectKey,
			Message:    row.Message,
			Read:       row.Read,
			CreatedAt:  row.CreatedAt,
		}
		if row.Ficha != nil {
			view.Ficha = *row.Ficha
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *AlertReadStore) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := pgxscan.Get(ctx, s.db, &count, `
		SELECT count(*) FROM notifications
		WHERE NOT read AND NOT dismissed`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return count, nil
}
