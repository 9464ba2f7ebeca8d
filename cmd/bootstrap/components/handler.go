package components

import (
	"booking-widget/internal/handler"
	"booking-widget/internal/handler/api"
	"booking-widget/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWidgetHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
