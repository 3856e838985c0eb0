package commands

import (
	"context"
	"log/slog"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/pkg/metrics"
	"fleetsync/internal/usecase/shared"

	"github.com/google/uuid"
)

// SweepResult reports one alert sweep: how many intents the deriver
// proposed and how many survived the open-notification dedupe.
type SweepResult struct {
	Proposed int
	Created  int
	Warnings []string
}

type AlertCommands interface {
	// Sweep derives notification intents from the current live state and
	// persists the ones without an open duplicate.
	Sweep(ctx context.Context) (*SweepResult, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Dismiss(ctx context.Context, id uuid.UUID) error
}

// AlertWriteStore covers the notification mutations the sweep does not
// need transactional coupling for.
type AlertWriteStore interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
	Dismiss(ctx context.Context, id uuid.UUID) error
}

type alertUseCaseImpl struct {
	uow     shared.UnitOfWork
	store   AlertWriteStore
	sink    shared.NotificationSink
	logger  *slog.Logger
	metrics *metrics.Registry
}

func NewAlertUseCase(uow shared.UnitOfWork, store AlertWriteStore, sink shared.NotificationSink, logger *slog.Logger, m *metrics.Registry) AlertCommands {
	return &alertUseCaseImpl{uow: uow, store: store, sink: sink, logger: logger, metrics: m}
}

func (uc *alertUseCaseImpl) Sweep(ctx context.Context) (*SweepResult, error) {
	var result SweepResult
	var created []alert.Intent

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Thresholds are read fresh every run; a stale policy must not
		// decide urgency.
		policy, err := tx.Config().Load(ctx)
		if err != nil {
			return err
		}

		schedules, err := tx.Maintenance().All(ctx)
		if err != nil {
			return err
		}
		items, err := tx.Inventory().All(ctx)
		if err != nil {
			return err
		}
		fleet, err := tx.Equipment().All(ctx)
		if err != nil {
			return err
		}

		intents := alert.Derive(schedules, items, fleet, policy)
		result.Proposed = len(intents)
		created = created[:0]

		for _, intent := range intents {
			inserted, err := tx.Notifications().CreateIfAbsent(ctx, intent)
			if err != nil {
				return err
			}
			if inserted {
				created = append(created, intent)
			}
		}
		result.Created = len(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// External fan-out happens after commit: a failed bus publish must not
	// roll back persisted notifications. Failures degrade to warnings.
	for _, intent := range created {
		if err := uc.sink.Publish(ctx, intent); err != nil {
			uc.logger.Warn("alert publish failed",
				"kind", string(intent.Kind),
				"subject", intent.SubjectKey,
				"error", err.Error())
			result.Warnings = append(result.Warnings, "publish failed for "+intent.DedupeKey())
		}
	}

	uc.metrics.ObserveSweep(result.Proposed, result.Created)
	uc.logger.Info("alert sweep completed", "proposed", result.Proposed, "created", result.Created)
	return &result, nil
}

func (uc *alertUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return uc.store.MarkRead(ctx, id)
}

func (uc *alertUseCaseImpl) Dismiss(ctx context.Context, id uuid.UUID) error {
	return uc.store.Dismiss(ctx, id)
}
