package components

import (
	"wedding-analytics/internal/handler"
	"wedding-analytics/internal/handler/api"
	"wedding-analytics/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAnalyticsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
