package handlers

import (
	"net/http"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler handles HTTP requests for the activity catalog
type ActivityHandler struct {
	service service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// GetActivities handles GET /activities
// @Summary Get the activity catalog
// @Description Returns the process-wide activity catalog, seeding defaults on first access.
// @Tags activities
// @Produce json
// @Success 200 {object} service.ActivityCatalogResponse
// @Security BearerAuth
// @Router /activities [get]
func (h *ActivityHandler) GetActivities(c *gin.Context) {
	catalog, err := h.service.GetCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// ReplaceActivities handles PUT /activities
// @Summary Replace the activity catalog
// @Description Overwrites the catalog wholesale with the provided list.
// @Tags activities
// @Accept json
// @Produce json
// @Param activities body service.ReplaceActivitiesRequest true "New catalog contents"
// @Success 200 {object} service.ActivityCatalogResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /activities [put]
func (h *ActivityHandler) ReplaceActivities(c *gin.Context) {
	var req service.ReplaceActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	catalog, err := h.service.ReplaceCatalog(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, catalog)
}
