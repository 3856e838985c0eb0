package repository

import (
	"context"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/infra"
	"fleetsync/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateIfAbsent inserts the intent unless an open notification already
// occupies its (kind, subject) slot. The partial unique index makes the
// check race-free; a conflicting insert is simply skipped.
func (r *NotificationRepository) CreateIfAbsent(ctx context.Context, intent alert.Intent) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, kind, severity, subject_key, ficha, message)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		ON CONFLICT (kind, subject_key) WHERE NOT read AND NOT dismissed DO NOTHING`,
		uuid.New(), string(intent.Kind), string(intent.Severity), intent.SubjectKey, intent.Ficha, intent.Message)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create notification", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET dismissed = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to dismiss notification", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotificationNotFound
	}
	return nil
}
