package layout

import (
	"go.uber.org/fx"

	"layoutdss/internal/module/layout/mbms"
	"layoutdss/internal/module/layout/models"
	"layoutdss/internal/module/layout/preset"
	"layoutdss/internal/module/layout/scheduler"
	"layoutdss/internal/module/layout/solve"
)

// Module provides the whole layout feature: the solver models, the solve and
// preset modules, the shared result cache and the maintenance scheduler.
var Module = fx.Module("layout",
	// Core models (solver + registry)
	models.Module,

	// Feature sub-modules (Service, Handler chains)
	solve.Module,
	preset.Module,

	fx.Provide(
		// Shared model result cache (Redis)
		mbms.NewRedisCache,

		// Background maintenance jobs
		scheduler.NewService,
	),
)
