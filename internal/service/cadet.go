package service

import (
	"errors"
	"fmt"
	"strings"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/events"
	"cadet-corps-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CadetService handles business logic for cadets
type CadetService struct {
	repo         repository.CadetRepositoryInterface
	yearRepo     repository.SchoolYearRepositoryInterface
	chartRepo    repository.ChainOfCommandRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	validator    *validator.Validate
	bus          *events.Bus
}

// NewCadetService creates a new cadet service
func NewCadetService(repo repository.CadetRepositoryInterface, yearRepo repository.SchoolYearRepositoryInterface, chartRepo repository.ChainOfCommandRepositoryInterface, positionRepo repository.PositionRepositoryInterface, validator *validator.Validate, bus *events.Bus) *CadetService {
	return &CadetService{
		repo:         repo,
		yearRepo:     yearRepo,
		chartRepo:    chartRepo,
		positionRepo: positionRepo,
		validator:    validator,
		bus:          bus,
	}
}

// CreateCadetRequest represents the request to create a cadet
type CreateCadetRequest struct {
	SchoolYearID        uuid.UUID `json:"school_year_id" validate:"required"`
	FirstName           string    `json:"first_name" validate:"required,max=100"`
	LastName            string    `json:"last_name" validate:"required,max=100"`
	Rank                string    `json:"rank,omitempty" validate:"max=100"`
	Grade               int       `json:"grade,omitempty"`
	ASLevel             int       `json:"as_level,omitempty"`
	Flight              string    `json:"flight,omitempty" validate:"max=50"`
	Email               string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PhoneNumber         string    `json:"phone_number,omitempty" validate:"max=20"`
	Notes               string    `json:"notes,omitempty" validate:"max=1000"`
	Semester1Activities []string  `json:"semester1_activities,omitempty"`
	Semester2Activities []string  `json:"semester2_activities,omitempty"`
}

// UpdateCadetRequest represents the request to update a cadet. Nil fields
// are left unchanged.
type UpdateCadetRequest struct {
	FirstName           *string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName            *string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Rank                *string  `json:"rank,omitempty" validate:"omitempty,max=100"`
	Grade               *int     `json:"grade,omitempty"`
	ASLevel             *int     `json:"as_level,omitempty"`
	Flight              *string  `json:"flight,omitempty" validate:"omitempty,max=50"`
	Email               *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PhoneNumber         *string  `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Notes               *string  `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Semester1Activities []string `json:"semester1_activities,omitempty"`
	Semester2Activities []string `json:"semester2_activities,omitempty"`
}

// CadetResponse represents the response for cadet operations
type CadetResponse struct {
	ID                  uuid.UUID             `json:"id"`
	SchoolYearID        uuid.UUID             `json:"school_year_id"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name"`
	Rank                string                `json:"rank"`
	Grade               int                   `json:"grade"`
	ASLevel             int                   `json:"as_level"`
	Flight              string                `json:"flight"`
	Email               string                `json:"email,omitempty"`
	PhoneNumber         string                `json:"phone_number,omitempty"`
	Notes               string                `json:"notes,omitempty"`
	Semester1Activities []string              `json:"semester1_activities"`
	Semester2Activities []string              `json:"semester2_activities"`
	YearlyHistory       []models.HistoryEntry `json:"yearly_history"`
	CreatedAt           string                `json:"created_at"`
	UpdatedAt           string                `json:"updated_at"`
}

// CadetListResponse represents a paginated list of cadets
type CadetListResponse struct {
	Cadets   []CadetResponse `json:"cadets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new cadet in a school year. Names are trimmed and
// required; out-of-range grade and AS level fall back to entry defaults.
func (s *CadetService) Create(req *CreateCadetRequest) (*CadetResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.yearRepo.GetByID(req.SchoolYearID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to verify school year: %w", err)
	}

	rank := req.Rank
	if rank == "" {
		rank = models.DefaultRank()
	}

	cadet := &models.Cadet{
		SchoolYearID:        req.SchoolYearID,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Rank:                rank,
		Grade:               models.NormalizeGrade(req.Grade),
		ASLevel:             models.NormalizeASLevel(req.ASLevel),
		Flight:              req.Flight,
		Email:               req.Email,
		PhoneNumber:         req.PhoneNumber,
		Notes:               req.Notes,
		Semester1Activities: toStringList(req.Semester1Activities),
		Semester2Activities: toStringList(req.Semester2Activities),
		YearlyHistory:       models.HistoryEntries{},
	}

	if err := s.repo.Create(cadet); err != nil {
		return nil, fmt.Errorf("failed to create cadet: %w", err)
	}

	s.publish("created", cadet)
	return s.toResponse(cadet), nil
}

// GetByID retrieves a cadet by ID
func (s *CadetService) GetByID(id uuid.UUID) (*CadetResponse, error) {
	cadet, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCadetNotFound
		}
		return nil, fmt.Errorf("failed to get cadet: %w", err)
	}
	return s.toResponse(cadet), nil
}

// GetBySchoolYear retrieves cadets of a school year with pagination
func (s *CadetService) GetBySchoolYear(schoolYearID uuid.UUID, page, pageSize int) (*CadetListResponse, error) {
	if _, err := s.yearRepo.GetByID(schoolYearID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to verify school year: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	cadets, total, err := s.repo.GetBySchoolYearID(schoolYearID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get cadets: %w", err)
	}

	responses := make([]CadetResponse, len(cadets))
	for i, cadet := range cadets {
		responses[i] = *s.toResponse(&cadet)
	}

	return &CadetListResponse{
		Cadets:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a cadet's fields
func (s *CadetService) Update(id uuid.UUID, req *UpdateCadetRequest) (*CadetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cadet, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCadetNotFound
		}
		return nil, fmt.Errorf("failed to get cadet: %w", err)
	}

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" {
			return nil, &apperrors.ValidationError{Field: "first_name", Message: "must not be empty"}
		}
		cadet.FirstName = name
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" {
			return nil, &apperrors.ValidationError{Field: "last_name", Message: "must not be empty"}
		}
		cadet.LastName = name
	}
	if req.Rank != nil {
		cadet.Rank = *req.Rank
	}
	if req.Grade != nil {
		cadet.Grade = models.NormalizeGrade(*req.Grade)
	}
	if req.ASLevel != nil {
		cadet.ASLevel = models.NormalizeASLevel(*req.ASLevel)
	}
	if req.Flight != nil {
		cadet.Flight = *req.Flight
	}
	if req.Email != nil {
		cadet.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		cadet.PhoneNumber = *req.PhoneNumber
	}
	if req.Notes != nil {
		cadet.Notes = *req.Notes
	}
	if req.Semester1Activities != nil {
		cadet.Semester1Activities = toStringList(req.Semester1Activities)
	}
	if req.Semester2Activities != nil {
		cadet.Semester2Activities = toStringList(req.Semester2Activities)
	}

	if err := s.repo.Update(cadet); err != nil {
		return nil, fmt.Errorf("failed to update cadet: %w", err)
	}

	s.publish("updated", cadet)
	return s.toResponse(cadet), nil
}

// Delete removes a cadet and unassigns it from every position in the school
// year's charts.
func (s *CadetService) Delete(id uuid.UUID) error {
	cadet, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCadetNotFound
		}
		return fmt.Errorf("failed to get cadet: %w", err)
	}

	charts, err := s.chartRepo.GetBySchoolYearID(cadet.SchoolYearID)
	if err != nil {
		return fmt.Errorf("failed to load charts: %w", err)
	}
	for _, chart := range charts {
		positions, err := s.positionRepo.GetByChartID(chart.ID)
		if err != nil {
			return fmt.Errorf("failed to load positions: %w", err)
		}
		var dirty []models.Position
		for _, pos := range positions {
			if remaining, removed := pos.AssignedCadets.Remove(cadet.ID); removed {
				pos.AssignedCadets = remaining
				dirty = append(dirty, pos)
			}
		}
		if err := s.positionRepo.UpdateBatch(dirty); err != nil {
			return fmt.Errorf("failed to unassign cadet: %w", err)
		}
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete cadet: %w", err)
	}

	s.publish("deleted", cadet)
	return nil
}

func (s *CadetService) publish(eventType string, cadet *models.Cadet) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:         eventType,
		Entity:       "cadet",
		SchoolYearID: cadet.SchoolYearID,
		Payload:      s.toResponse(cadet),
	})
}

func toStringList(in []string) models.StringList {
	if in == nil {
		return models.StringList{}
	}
	return models.StringList(in)
}

func (s *CadetService) toResponse(cadet *models.Cadet) *CadetResponse {
	return &CadetResponse{
		ID:                  cadet.ID,
		SchoolYearID:        cadet.SchoolYearID,
		FirstName:           cadet.FirstName,
		LastName:            cadet.LastName,
		Rank:                cadet.Rank,
		Grade:               cadet.Grade,
		ASLevel:             cadet.ASLevel,
		Flight:              cadet.Flight,
		Email:               cadet.Email,
		PhoneNumber:         cadet.PhoneNumber,
		Notes:               cadet.Notes,
		Semester1Activities: cadet.Semester1Activities,
		Semester2Activities: cadet.Semester2Activities,
		YearlyHistory:       cadet.YearlyHistory,
		CreatedAt:           cadet.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:           cadet.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
