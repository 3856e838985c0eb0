package commands

import (
	"context"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/usecase/shared"
)

// ThresholdUpdate carries the raw pair an operator submitted.
type ThresholdUpdate struct {
	Critical   float64
	Preventive float64
}

// ThresholdUpdateResult echoes the normalized policy plus any clamp
// warnings, surfaced verbatim so the operator can fix the source values.
type ThresholdUpdateResult struct {
	Policy   alert.Policy
	Warnings []string
}

type ConfigCommands interface {
	UpdateThresholds(ctx context.Context, upd ThresholdUpdate) (*ThresholdUpdateResult, error)
}

type configUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewConfigUseCase(uow shared.UnitOfWork) ConfigCommands {
	return &configUseCaseImpl{uow: uow}
}

func (uc *configUseCaseImpl) UpdateThresholds(ctx context.Context, upd ThresholdUpdate) (*ThresholdUpdateResult, error) {
	policy, warnings := alert.NewPolicy(upd.Critical, upd.Preventive)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Config().Save(ctx, policy)
	})
	if err != nil {
		return nil, err
	}

	return &ThresholdUpdateResult{Policy: policy, Warnings: warnings}, nil
}
