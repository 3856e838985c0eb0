package components

import (
	"fleetsync/internal/handler"
	"fleetsync/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSyncHandler,
		api.NewFleetHandler,
		api.NewAlertHandler,
		api.NewConfigHandler,
	),
	fx.Invoke(handler.NewRouter),
)
