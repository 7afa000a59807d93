package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/logger"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles whole-graph export and import
type TransferHandler struct {
	service service.TransferServiceInterface
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(service service.TransferServiceInterface) *TransferHandler {
	return &TransferHandler{service: service}
}

// Export handles GET /export
// @Summary Export the entire entity graph
// @Description Serializes every school year with its cadets, charts and positions into one JSON document.
// @Tags transfer
// @Produce json
// @Success 200 {object} service.ExportDocument
// @Security BearerAuth
// @Router /export [get]
func (h *TransferHandler) Export(c *gin.Context) {
	doc, err := h.service.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cadet-corps-export.json"`)
	c.JSON(http.StatusOK, doc)
}

// Import handles POST /import
// @Summary Import an entity graph, replacing all existing data
// @Description Accepts the current export schema, a bare school year array, or the legacy corps-nested wrapper. A payload that fails to parse leaves existing data untouched.
// @Tags transfer
// @Accept json
// @Produce json
// @Success 200 {object} service.ExportDocument
// @Failure 400 {object} map[string]interface{} "Payload could not be parsed"
// @Security BearerAuth
// @Router /import [post]
func (h *TransferHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	doc, err := h.service.Import(payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportParse) || errors.Is(err, apperrors.ErrImportShape) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.WithContext(c).WithField("school_years", len(doc.SchoolYears)).Info("import replaced entity graph")

	c.JSON(http.StatusOK, doc)
}
