package components

import (
	"fleetsync/internal/pkg/clock"
	"fleetsync/internal/pkg/metrics"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	metrics.New,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSyncUseCase,
		commands.NewAlertUseCase,
		commands.NewConfigUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFleetQueries,
		queries.NewAlertQueries,
	),
)
