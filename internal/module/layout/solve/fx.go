package solve

import (
	"go.uber.org/fx"

	"layoutdss/internal/module/layout/solve/handler"
	"layoutdss/internal/module/layout/solve/service"
)

// Module exports the layout solve module for dependency injection
// Following the Model -> Service -> Handler layering; the model itself is
// provided by the central models module.
var Module = fx.Module("layout_solve",
	fx.Provide(
		// Service (wraps model, adds caching and logging)
		service.NewService,

		// Handlers (HTTP + websocket stream)
		handler.NewHandler,
		handler.NewWebSocketHandler,
	),
)
