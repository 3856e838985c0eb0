package components

import (
	"fleetsync/internal/infra/readstore"
	"fleetsync/internal/infra/repository"
	"fleetsync/internal/infra/uow"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"
	"fleetsync/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewFleetReadStore,
			fx.As(new(queries.FleetReadStore)),
		),
		fx.Annotate(
			readstore.NewAlertReadStore,
			fx.As(new(queries.AlertReadStore)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.AlertWriteStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
