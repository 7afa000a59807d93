package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CadetHandler handles HTTP requests for cadet operations
type CadetHandler struct {
	service service.CadetServiceInterface
}

// NewCadetHandler creates a new cadet handler
func NewCadetHandler(service service.CadetServiceInterface) *CadetHandler {
	return &CadetHandler{service: service}
}

// CreateCadet handles POST /cadets
// @Summary Create a new cadet
// @Tags cadets
// @Accept json
// @Produce json
// @Param cadet body service.CreateCadetRequest true "Cadet data"
// @Success 201 {object} service.CadetResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /cadets [post]
func (h *CadetHandler) CreateCadet(c *gin.Context) {
	var req service.CreateCadetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cadet, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cadet)
}

// GetCadet handles GET /cadets/:id
// @Summary Get cadet by ID
// @Tags cadets
// @Produce json
// @Param id path string true "Cadet ID (UUID)"
// @Success 200 {object} service.CadetResponse
// @Failure 400 {object} map[string]interface{} "Invalid cadet ID"
// @Failure 404 {object} map[string]interface{} "Cadet not found"
// @Security BearerAuth
// @Router /cadets/{id} [get]
func (h *CadetHandler) GetCadet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cadet ID"})
		return
	}

	cadet, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCadetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cadet)
}

// GetCadetsBySchoolYear handles GET /school-years/:id/cadets
// @Summary List cadets of a school year
// @Tags cadets
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.CadetListResponse
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id}/cadets [get]
func (h *CadetHandler) GetCadetsBySchoolYear(c *gin.Context) {
	yearID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	cadets, err := h.service.GetBySchoolYear(yearID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cadets)
}

// UpdateCadet handles PUT /cadets/:id
// @Summary Update a cadet
// @Description Updates the provided fields; omitted fields are left unchanged.
// @Tags cadets
// @Accept json
// @Produce json
// @Param id path string true "Cadet ID (UUID)"
// @Param cadet body service.UpdateCadetRequest true "Fields to update"
// @Success 200 {object} service.CadetResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Cadet not found"
// @Security BearerAuth
// @Router /cadets/{id} [put]
func (h *CadetHandler) UpdateCadet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cadet ID"})
		return
	}

	var req service.UpdateCadetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cadet, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCadetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cadet)
}

// DeleteCadet handles DELETE /cadets/:id
// @Summary Delete a cadet
// @Description Removes the cadet and unseats them from every chart position first.
// @Tags cadets
// @Produce json
// @Param id path string true "Cadet ID (UUID)"
// @Success 204 "No content"
// @Failure 404 {object} map[string]interface{} "Cadet not found"
// @Security BearerAuth
// @Router /cadets/{id} [delete]
func (h *CadetHandler) DeleteCadet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cadet ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrCadetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
