package handlers

import (
	"errors"
	"net/http"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChainOfCommandHandler handles HTTP requests for charts, positions and
// cadet assignments
type ChainOfCommandHandler struct {
	service service.ChainOfCommandServiceInterface
}

// NewChainOfCommandHandler creates a new chain of command handler
func NewChainOfCommandHandler(service service.ChainOfCommandServiceInterface) *ChainOfCommandHandler {
	return &ChainOfCommandHandler{service: service}
}

// chartError maps service errors for chart and position operations onto
// HTTP statuses. Capacity violations are a 409, everything the caller got
// wrong is a 400 or 404.
func chartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrChainOfCommandNotFound),
		errors.Is(err, apperrors.ErrPositionNotFound),
		errors.Is(err, apperrors.ErrCadetNotFound),
		errors.Is(err, apperrors.ErrSchoolYearNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPositionNotInChart),
		errors.Is(err, apperrors.ErrCadetNotInYear):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAtCapacity(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateChart handles POST /charts
// @Summary Create a chain of command chart
// @Description Creates a chart, optionally seeded from a named position template.
// @Tags charts
// @Accept json
// @Produce json
// @Param chart body service.CreateChartRequest true "Chart data"
// @Success 201 {object} service.ChartResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /charts [post]
func (h *ChainOfCommandHandler) CreateChart(c *gin.Context) {
	var req service.CreateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.service.Create(&req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, chart)
}

// GetChart handles GET /charts/:id
// @Summary Get a chart with its positions
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Success 200 {object} service.ChartResponse
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Security BearerAuth
// @Router /charts/{id} [get]
func (h *ChainOfCommandHandler) GetChart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}

	chart, err := h.service.GetByID(id)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// GetChartsBySchoolYear handles GET /school-years/:id/charts
// @Summary List charts of a school year
// @Tags charts
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Success 200 {array} service.ChartResponse
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id}/charts [get]
func (h *ChainOfCommandHandler) GetChartsBySchoolYear(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	charts, err := h.service.GetBySchoolYear(yearID)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, charts)
}

// UpdateChart handles PUT /charts/:id
// @Summary Update a chart's name or description
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param chart body service.UpdateChartRequest true "Fields to update"
// @Success 200 {object} service.ChartResponse
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Security BearerAuth
// @Router /charts/{id} [put]
func (h *ChainOfCommandHandler) UpdateChart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}

	var req service.UpdateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.service.Update(id, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// DeleteChart handles DELETE /charts/:id
// @Summary Delete a chart and its positions
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Success 204 "No content"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Security BearerAuth
// @Router /charts/{id} [delete]
func (h *ChainOfCommandHandler) DeleteChart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		chartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPosition handles POST /charts/:id/positions
// @Summary Add a position to a chart
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param position body service.PositionRequest true "Position data"
// @Success 201 {object} service.PositionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Security BearerAuth
// @Router /charts/{id}/positions [post]
func (h *ChainOfCommandHandler) AddPosition(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}

	var req service.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.service.AddPosition(chartID, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusCreated, position)
}

// UpdatePosition handles PUT /charts/:id/positions/:positionId
// @Summary Update a position
// @Description Updates position fields. Shrinking max_cadets below the current occupancy is rejected.
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param positionId path string true "Position ID (UUID)"
// @Param position body service.UpdatePositionRequest true "Fields to change"
// @Success 200 {object} service.PositionResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Chart or position not found"
// @Security BearerAuth
// @Router /charts/{id}/positions/{positionId} [put]
func (h *ChainOfCommandHandler) UpdatePosition(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}
	positionID, err := uuid.Parse(c.Param("positionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	position, err := h.service.UpdatePosition(chartID, positionID, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

// DeletePosition handles DELETE /charts/:id/positions/:positionId
// @Summary Remove a position from a chart
// @Tags charts
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param positionId path string true "Position ID (UUID)"
// @Success 204 "No content"
// @Failure 404 {object} map[string]interface{} "Chart or position not found"
// @Security BearerAuth
// @Router /charts/{id}/positions/{positionId} [delete]
func (h *ChainOfCommandHandler) DeletePosition(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}
	positionID, err := uuid.Parse(c.Param("positionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	if err := h.service.DeletePosition(chartID, positionID); err != nil {
		chartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignCadet handles POST /charts/:id/positions/:positionId/assign
// @Summary Assign a cadet to a position
// @Description Moves the cadet into the position, removing them from any other position in the chart. Fails with 409 if the position is at capacity.
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param positionId path string true "Position ID (UUID)"
// @Param assignment body service.AssignRequest true "Cadet to assign"
// @Success 200 {object} service.ChartResponse
// @Failure 400 {object} map[string]interface{} "Cadet belongs to another school year"
// @Failure 404 {object} map[string]interface{} "Chart, position or cadet not found"
// @Failure 409 {object} map[string]interface{} "Position is at capacity"
// @Security BearerAuth
// @Router /charts/{id}/positions/{positionId}/assign [post]
func (h *ChainOfCommandHandler) AssignCadet(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}
	positionID, err := uuid.Parse(c.Param("positionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.service.AssignCadet(chartID, positionID, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// UnassignCadet handles POST /charts/:id/positions/:positionId/unassign
// @Summary Remove a cadet from a position
// @Description Unseats the cadet. Removing a cadet who is not seated there is a no-op.
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param positionId path string true "Position ID (UUID)"
// @Param assignment body service.AssignRequest true "Cadet to unassign"
// @Success 200 {object} service.ChartResponse
// @Failure 404 {object} map[string]interface{} "Chart or position not found"
// @Security BearerAuth
// @Router /charts/{id}/positions/{positionId}/unassign [post]
func (h *ChainOfCommandHandler) UnassignCadet(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}
	positionID, err := uuid.Parse(c.Param("positionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position ID"})
		return
	}

	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.service.UnassignCadet(chartID, positionID, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// InstallTemplate handles POST /charts/:id/template
// @Summary Install a position template into a chart
// @Description Replaces all positions and assignments with a fresh expansion of the named template. Unknown template names fall back to the default.
// @Tags charts
// @Accept json
// @Produce json
// @Param id path string true "Chart ID (UUID)"
// @Param template body service.ExpandTemplateRequest true "Template name"
// @Success 200 {object} service.ChartResponse
// @Failure 404 {object} map[string]interface{} "Chart not found"
// @Security BearerAuth
// @Router /charts/{id}/template [post]
func (h *ChainOfCommandHandler) InstallTemplate(c *gin.Context) {
	chartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart ID"})
		return
	}

	var req service.ExpandTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.service.InstallTemplate(chartID, &req)
	if err != nil {
		chartError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}
