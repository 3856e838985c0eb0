package bootstrap

import (
	"fleetsync/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	NATSModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
