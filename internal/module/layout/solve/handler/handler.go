package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/mbms"
	"layoutdss/internal/module/layout/solve/dto"
	"layoutdss/internal/module/layout/solve/service"
	"layoutdss/internal/shared"
)

// Handler handles layout solve HTTP requests
type Handler struct {
	service  service.Service
	registry mbms.Registry
	logger   *zap.Logger
}

// NewHandler creates a new layout solve handler
func NewHandler(service service.Service, registry mbms.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers layout solve routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	layout := router.Group("/api/v1/layout")
	{
		layout.POST("/solve", h.Solve)
		layout.GET("/models", h.ListModels)
	}
}

// Solve godoc
// @Summary Solve a segment layout
// @Description Partition a root distance across an ordered segment strip, compressing or expanding against per-segment constraints
// @Tags layout
// @Accept json
// @Produce json
// @Param input body dto.SolveRequest true "Solve Request"
// @Success 200 {object} dto.LayoutModelOutput
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/layout/solve [post]
func (h *Handler) Solve(c *gin.Context) {
	var req dto.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind solve request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.Solve(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Failed to solve layout", zap.Error(err))
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Layout solved successfully", output)
}

// ListModels godoc
// @Summary List registered decision models
// @Tags layout
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/layout/models [get]
func (h *Handler) ListModels(c *gin.Context) {
	models := make(map[string]string)
	for _, name := range h.registry.List() {
		model, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		models[name] = model.Description()
	}

	shared.RespondWithSuccess(c, http.StatusOK, "", models)
}
