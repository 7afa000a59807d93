package service

import (
	"fmt"
	"strings"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ActivityService handles the process-wide activity catalog
type ActivityService struct {
	repo      repository.ActivityCatalogRepositoryInterface
	validator *validator.Validate
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityCatalogRepositoryInterface, validator *validator.Validate) *ActivityService {
	return &ActivityService{repo: repo, validator: validator}
}

// ReplaceActivitiesRequest represents the request to overwrite the catalog
type ReplaceActivitiesRequest struct {
	Activities []string `json:"activities" validate:"required,dive,max=100"`
}

// ActivityCatalogResponse represents the catalog contents
type ActivityCatalogResponse struct {
	Activities []string `json:"activities"`
	UpdatedAt  string   `json:"updated_at"`
}

// GetCatalog returns the catalog, seeding it with defaults on first access
func (s *ActivityService) GetCatalog() (*ActivityCatalogResponse, error) {
	catalog, err := s.repo.GetOrCreate()
	if err != nil {
		return nil, fmt.Errorf("failed to load activity catalog: %w", err)
	}
	return toCatalogResponse(catalog), nil
}

// ReplaceCatalog overwrites the catalog wholesale. Entries already referenced
// by cadet activity lists are not retroactively cleaned up.
func (s *ActivityService) ReplaceCatalog(req *ReplaceActivitiesRequest) (*ActivityCatalogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cleaned := make(models.StringList, 0, len(req.Activities))
	for _, activity := range req.Activities {
		activity = strings.TrimSpace(activity)
		if activity == "" {
			return nil, &apperrors.ValidationError{Field: "activities", Message: "entries must not be empty"}
		}
		cleaned = append(cleaned, activity)
	}

	catalog, err := s.repo.Replace(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to replace activity catalog: %w", err)
	}
	return toCatalogResponse(catalog), nil
}

func toCatalogResponse(catalog *models.ActivityCatalog) *ActivityCatalogResponse {
	return &ActivityCatalogResponse{
		Activities: catalog.Activities,
		UpdatedAt:  catalog.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
