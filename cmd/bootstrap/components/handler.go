package components

import (
	"riderhub/internal/handler"
	"riderhub/internal/handler/api"
	"riderhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDriverHandler,
		api.NewMotorcycleHandler,
		api.NewRentalHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
