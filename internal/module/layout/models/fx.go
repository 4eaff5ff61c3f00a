package models

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/mbms"
	"layoutdss/internal/module/layout/models/segmentlayout"
)

// Module provides the layout models for dependency injection. The registry
// currently holds a single model; the registration path keeps additions
// plug-and-play.
var Module = fx.Module("layout-models",
	fx.Provide(
		// Segment Layout Model (discadelta solver)
		segmentlayout.NewModel,

		NewRegistry,
	),
)

// NewRegistry builds the model registry with every model registered.
func NewRegistry(layoutModel *segmentlayout.Model, logger *zap.Logger) (mbms.Registry, error) {
	registry := mbms.NewRegistry()

	if err := registry.Register(layoutModel); err != nil {
		logger.Error("Failed to register segment layout model", zap.Error(err))
		return nil, err
	}

	logger.Info("Layout model registry initialized",
		zap.Strings("models", registry.List()))

	return registry, nil
}
