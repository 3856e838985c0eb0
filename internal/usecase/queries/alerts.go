package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	Severity   string    `json:"severity"`
	SubjectKey string    `json:"subject_key"`
	Ficha      string    `json:"ficha,omitempty"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type AlertReadStore interface {
	Open(ctx context.Context, limit int32) ([]*NotificationView, error)
	UnreadCount(ctx context.Context) (int64, error)
}

type AlertQueries interface {
	ListOpen(ctx context.Context, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context) (int64, error)
}

const defaultAlertPageSize = 50

type alertQueriesImpl struct {
	store AlertReadStore
}

func NewAlertQueries(store AlertReadStore) AlertQueries {
	return &alertQueriesImpl{store: store}
}

func (q *alertQueriesImpl) ListOpen(ctx context.Context, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > defaultAlertPageSize {
		limit = defaultAlertPageSize
	}
	return q.store.Open(ctx, int32(limit))
}

func (q *alertQueriesImpl) UnreadCount(ctx context.Context) (int64, error) {
	return q.store.UnreadCount(ctx)
}
