package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/logger"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchoolYearHandler handles HTTP requests for school year operations
type SchoolYearHandler struct {
	service service.SchoolYearServiceInterface
}

// NewSchoolYearHandler creates a new school year handler
func NewSchoolYearHandler(service service.SchoolYearServiceInterface) *SchoolYearHandler {
	return &SchoolYearHandler{service: service}
}

// CreateSchoolYear handles POST /school-years
// @Summary Create a new school year
// @Description Create a school year. Creation never triggers promotion.
// @Tags school-years
// @Accept json
// @Produce json
// @Param school_year body service.CreateSchoolYearRequest true "School year data"
// @Success 201 {object} service.SchoolYearResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "School year already exists"
// @Security BearerAuth
// @Router /school-years [post]
func (h *SchoolYearHandler) CreateSchoolYear(c *gin.Context) {
	var req service.CreateSchoolYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	year, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, year)
}

// GetSchoolYear handles GET /school-years/:id
// @Summary Get school year by ID
// @Tags school-years
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Success 200 {object} service.SchoolYearResponse
// @Failure 400 {object} map[string]interface{} "Invalid school year ID"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id} [get]
func (h *SchoolYearHandler) GetSchoolYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	year, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, year)
}

// GetAllSchoolYears handles GET /school-years
// @Summary List school years
// @Tags school-years
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SchoolYearListResponse
// @Security BearerAuth
// @Router /school-years [get]
func (h *SchoolYearHandler) GetAllSchoolYears(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	years, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, years)
}

// GetActiveSchoolYear handles GET /school-years/active
// @Summary Get the active school year
// @Tags school-years
// @Produce json
// @Success 200 {object} service.SchoolYearResponse
// @Failure 404 {object} map[string]interface{} "No active school year"
// @Security BearerAuth
// @Router /school-years/active [get]
func (h *SchoolYearHandler) GetActiveSchoolYear(c *gin.Context) {
	year, err := h.service.GetActive()
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, year)
}

// UpdateSchoolYear handles PUT /school-years/:id
// @Summary Update a school year
// @Tags school-years
// @Accept json
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Param school_year body service.UpdateSchoolYearRequest true "Fields to update"
// @Success 200 {object} service.SchoolYearResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id} [put]
func (h *SchoolYearHandler) UpdateSchoolYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	var req service.UpdateSchoolYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	year, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, year)
}

// ActivateSchoolYear handles POST /school-years/:id/activate
// @Summary Mark a school year active
// @Description Atomically clears the previous active year and sets this one.
// @Tags school-years
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Success 200 {object} service.SchoolYearResponse
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id}/activate [post]
func (h *SchoolYearHandler) ActivateSchoolYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	year, err := h.service.SetActive(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, year)
}

// DeleteSchoolYear handles DELETE /school-years/:id
// @Summary Delete a school year
// @Description Deletion cascades to the year's cadets and charts.
// @Tags school-years
// @Produce json
// @Param id path string true "School year ID (UUID)"
// @Success 204 "No content"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/{id} [delete]
func (h *SchoolYearHandler) DeleteSchoolYear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid school year ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrSchoolYearNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Promote handles POST /school-years/promote
// @Summary Promote cadets into a new school year
// @Description Advances the outgoing roster: grade-12 cadets graduate out, everyone else is archived and re-created in the incoming year with grade and AS level advanced.
// @Tags school-years
// @Accept json
// @Produce json
// @Param promotion body service.PromoteRequest true "Outgoing and incoming year IDs"
// @Success 200 {object} service.PromoteResponse
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "School year not found"
// @Security BearerAuth
// @Router /school-years/promote [post]
func (h *SchoolYearHandler) Promote(c *gin.Context) {
	var req service.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Promote(&req)
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

	logger.WithContext(c).WithFields(map[string]interface{}{
		"from_year_id": result.FromYearID,
		"to_year_id":   result.ToYearID,
		"promoted":     result.Promoted,
		"graduated":    result.Graduated,
	}).Info("promotion completed")

	c.JSON(http.StatusOK, result)
}
