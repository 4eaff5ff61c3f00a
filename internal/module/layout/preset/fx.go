package preset

import (
	"go.uber.org/fx"

	"layoutdss/internal/module/layout/preset/handler"
	"layoutdss/internal/module/layout/preset/repository"
	"layoutdss/internal/module/layout/preset/service"
)

// Module exports the preset module for dependency injection
var Module = fx.Module("layout_preset",
	fx.Provide(
		// Repository (GORM persistence)
		repository.NewGormRepository,

		// Service (CRUD + solve-by-preset)
		service.NewService,

		// Handler (HTTP layer)
		handler.NewHandler,
	),
)
