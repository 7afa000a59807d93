package handlers

import (
	"errors"
	"net/http"

	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetProfile handles GET /profile
// @Summary Get the caller's profile
// @Description Returns the authenticated user's profile, creating it with the default role on first sight. Every call stamps the last login time.
// @Tags users
// @Produce json
// @Success 200 {object} service.UserProfileResponse
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	subject := c.GetString("subject")

	profile, err := h.service.GetOrCreate(subject, service.ProfileAttributes{
		Email:       c.GetString("email"),
		DisplayName: c.GetString("display_name"),
		AvatarURL:   c.GetString("avatar_url"),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMissingSubject) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
