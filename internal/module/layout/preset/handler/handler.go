package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/preset/domain"
	"layoutdss/internal/module/layout/preset/dto"
	"layoutdss/internal/module/layout/preset/service"
	"layoutdss/internal/shared"
)

// Handler handles preset HTTP requests
type Handler struct {
	service service.Service
	logger  *zap.Logger
}

// NewHandler creates a new preset handler
func NewHandler(service service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers preset routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	presets := router.Group("/api/v1/layout/presets")
	{
		presets.POST("", h.Create)
		presets.GET("", h.List)
		presets.GET("/:id", h.Get)
		presets.PUT("/:id", h.Update)
		presets.DELETE("/:id", h.Delete)
		presets.POST("/:id/solve", h.Solve)
	}
}

// Create godoc
// @Summary Create a layout preset
// @Description Store a named segment strip for later solving
// @Tags presets
// @Accept json
// @Produce json
// @Param input body dto.CreatePresetRequest true "Preset"
// @Success 201 {object} dto.PresetResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/layout/presets [post]
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind create preset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	response, err := toResponse(preset)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusCreated, "Preset created successfully", response)
}

// List godoc
// @Summary List layout presets
// @Tags presets
// @Produce json
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} shared.Page[dto.PresetResponse]
// @Router /api/v1/layout/presets [get]
func (h *Handler) List(c *gin.Context) {
	var pageReq shared.PageRequest
	if err := c.ShouldBindQuery(&pageReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pageReq.Normalize()

	presets, total, err := h.service.List(c.Request.Context(), pageReq.Page, pageReq.PageSize)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	responses := make([]dto.PresetResponse, 0, len(presets))
	for i := range presets {
		response, err := toResponse(&presets[i])
		if err != nil {
			shared.HandleError(c, err)
			return
		}
		responses = append(responses, response)
	}

	pagination := shared.NewPagination[dto.PresetResponse](total, pageReq.Page, pageReq.PageSize)
	shared.RespondWithPagination(c, http.StatusOK, responses, pagination)
}

// Get godoc
// @Summary Get a layout preset
// @Tags presets
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} dto.PresetResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/layout/presets/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseUUID(c)
	if !ok {
		return
	}

	preset, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	response, err := toResponse(preset)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "", response)
}

// Update godoc
// @Summary Update a layout preset
// @Tags presets
// @Accept json
// @Produce json
// @Param id path string true "Preset ID"
// @Param input body dto.UpdatePresetRequest true "Changes"
// @Success 200 {object} dto.PresetResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/layout/presets/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseUUID(c)
	if !ok {
		return
	}

	var req dto.UpdatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	response, err := toResponse(preset)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Preset updated successfully", response)
}

// Delete godoc
// @Summary Delete a layout preset
// @Tags presets
// @Param id path string true "Preset ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/layout/presets/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseUUID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		shared.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Solve godoc
// @Summary Solve a stored layout preset
// @Description Solve the preset's strip, at its default root distance or an override
// @Tags presets
// @Accept json
// @Produce json
// @Param id path string true "Preset ID"
// @Param input body dto.SolvePresetRequest true "Solve options"
// @Success 200 {object} solvedto.LayoutModelOutput
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/layout/presets/{id}/solve [post]
func (h *Handler) Solve(c *gin.Context) {
	id, ok := parseUUID(c)
	if !ok {
		return
	}

	// The body is optional; an empty body solves at the preset default.
	var req dto.SolvePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.service.SolvePreset(c.Request.Context(), id, &req)
	if err != nil {
		shared.HandleError(c, err)
		return
	}

	shared.RespondWithSuccess(c, http.StatusOK, "Preset solved successfully", output)
}

func parseUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		appErr := shared.NewAppError(shared.ErrCodeBadRequest, "Bad request", http.StatusBadRequest).
			WithDetails("param", "id").
			WithDetails("reason", "invalid UUID")
		shared.RespondWithAppError(c, appErr)
		return uuid.Nil, false
	}
	return id, true
}

func toResponse(preset *domain.Preset) (dto.PresetResponse, error) {
	configs, err := preset.SegmentConfigs()
	if err != nil {
		return dto.PresetResponse{}, err
	}

	return dto.PresetResponse{
		ID:                  preset.ID,
		Name:                preset.Name,
		Description:         preset.Description,
		DefaultRootDistance: preset.DefaultRootDistance,
		Segments:            configs,
		CreatedAt:           preset.CreatedAt,
		UpdatedAt:           preset.UpdatedAt,
	}, nil
}
