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

// SchoolYearService handles business logic for school years, including the
// yearly promotion transition.
type SchoolYearService struct {
	repo      repository.SchoolYearRepositoryInterface
	cadetRepo repository.CadetRepositoryInterface
	validator *validator.Validate
	bus       *events.Bus
}

// NewSchoolYearService creates a new school year service
func NewSchoolYearService(repo repository.SchoolYearRepositoryInterface, cadetRepo repository.CadetRepositoryInterface, validator *validator.Validate, bus *events.Bus) *SchoolYearService {
	return &SchoolYearService{
		repo:      repo,
		cadetRepo: cadetRepo,
		validator: validator,
		bus:       bus,
	}
}

// CreateSchoolYearRequest represents the request to create a school year.
// Creation never triggers promotion; use Promote for the yearly transition.
type CreateSchoolYearRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	StartYear int    `json:"start_year" validate:"required,min=1900,max=2200"`
	EndYear   int    `json:"end_year" validate:"required,min=1900,max=2200"`
	SetActive bool   `json:"set_active"`
}

// UpdateSchoolYearRequest represents the request to update a school year
type UpdateSchoolYearRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	StartYear int    `json:"start_year,omitempty" validate:"omitempty,min=1900,max=2200"`
	EndYear   int    `json:"end_year,omitempty" validate:"omitempty,min=1900,max=2200"`
}

// SchoolYearResponse represents the response for school year operations
type SchoolYearResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// SchoolYearListResponse represents a paginated list of school years
type SchoolYearListResponse struct {
	SchoolYears []SchoolYearResponse `json:"school_years"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// PromoteRequest names the outgoing and incoming years of a promotion.
type PromoteRequest struct {
	FromYearID uuid.UUID `json:"from_year_id" validate:"required"`
	ToYearID   uuid.UUID `json:"to_year_id" validate:"required"`
}

// PromoteResponse summarizes a completed promotion.
type PromoteResponse struct {
	FromYearID uuid.UUID `json:"from_year_id"`
	ToYearID   uuid.UUID `json:"to_year_id"`
	Promoted   int       `json:"promoted"`
	Graduated  int       `json:"graduated"`
}

// Create creates a new school year
func (s *SchoolYearService) Create(req *CreateSchoolYearRequest) (*SchoolYearResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing school year: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSchoolYearExists
	}

	year := &models.SchoolYear{
		Name:      req.Name,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}
	if err := s.repo.Create(year); err != nil {
		return nil, fmt.Errorf("failed to create school year: %w", err)
	}

	if req.SetActive {
		if err := s.repo.SetActive(year.ID); err != nil {
			return nil, fmt.Errorf("failed to activate school year: %w", err)
		}
		year.IsActive = true
	}

	s.publish("created", year)
	return s.toResponse(year), nil
}

// GetByID retrieves a school year by ID
func (s *SchoolYearService) GetByID(id uuid.UUID) (*SchoolYearResponse, error) {
	year, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to get school year: %w", err)
	}
	return s.toResponse(year), nil
}

// GetAll retrieves school years with pagination
func (s *SchoolYearService) GetAll(page, pageSize int) (*SchoolYearListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	years, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get school years: %w", err)
	}

	responses := make([]SchoolYearResponse, len(years))
	for i, year := range years {
		responses[i] = *s.toResponse(&year)
	}

	return &SchoolYearListResponse{
		SchoolYears: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetActive retrieves the single active school year
func (s *SchoolYearService) GetActive() (*SchoolYearResponse, error) {
	year, err := s.repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to get active school year: %w", err)
	}
	return s.toResponse(year), nil
}

// Update updates a school year's fields
func (s *SchoolYearService) Update(id uuid.UUID, req *UpdateSchoolYearRequest) (*SchoolYearResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	year, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to get school year: %w", err)
	}

	if req.Name != "" {
		year.Name = strings.TrimSpace(req.Name)
	}
	if req.StartYear != 0 {
		year.StartYear = req.StartYear
	}
	if req.EndYear != 0 {
		year.EndYear = req.EndYear
	}

	if err := s.repo.Update(year); err != nil {
		return nil, fmt.Errorf("failed to update school year: %w", err)
	}

	s.publish("updated", year)
	return s.toResponse(year), nil
}

// SetActive marks the given year active, clearing the previous holder in the
// same transition.
func (s *SchoolYearService) SetActive(id uuid.UUID) (*SchoolYearResponse, error) {
	if err := s.repo.SetActive(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to activate school year: %w", err)
	}

	year, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get school year: %w", err)
	}

	s.publish("activated", year)
	return s.toResponse(year), nil
}

// Delete removes a school year and, via ownership cascade, its cadets and charts
func (s *SchoolYearService) Delete(id uuid.UUID) error {
	year, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSchoolYearNotFound
		}
		return fmt.Errorf("failed to get school year: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete school year: %w", err)
	}

	s.publish("deleted", year)
	return nil
}

// Promote advances the outgoing year's roster into the incoming year.
// Grade-12 cadets graduate out of the outgoing roster; every survivor keeps
// its outgoing record and gains a fresh one in the incoming year, archived
// with a history entry and with grade and AS level advanced and semester
// activities reset. The active flag moves from the outgoing to the incoming
// year as part of the same transition. An empty outgoing roster is a no-op,
// not an error.
func (s *SchoolYearService) Promote(req *PromoteRequest) (*PromoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.FromYearID == req.ToYearID {
		return nil, &apperrors.ValidationError{Field: "to_year_id", Message: "cannot promote a year into itself"}
	}

	fromYear, err := s.repo.GetByID(req.FromYearID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to get outgoing year: %w", err)
	}
	toYear, err := s.repo.GetByID(req.ToYearID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to get incoming year: %w", err)
	}

	roster, err := s.cadetRepo.GetAllBySchoolYearID(fromYear.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load outgoing roster: %w", err)
	}

	promoted, graduates := promoteCadets(roster, fromYear, toYear)

	// Graduating seniors leave the outgoing roster; everyone else stays on
	// it and gains a promoted record in the incoming year.
	for _, grad := range graduates {
		if err := s.cadetRepo.Delete(grad.ID); err != nil {
			return nil, fmt.Errorf("failed to graduate cadet: %w", err)
		}
	}
	if err := s.cadetRepo.CreateBatch(promoted); err != nil {
		return nil, fmt.Errorf("failed to create promoted roster: %w", err)
	}

	if err := s.repo.SetActive(toYear.ID); err != nil {
		return nil, fmt.Errorf("failed to activate incoming year: %w", err)
	}

	s.publish("promoted", toYear)
	return &PromoteResponse{
		FromYearID: fromYear.ID,
		ToYearID:   toYear.ID,
		Promoted:   len(promoted),
		Graduated:  len(graduates),
	}, nil
}

// promoteCadets produces the incoming-year roster and the list of graduating
// seniors from the outgoing roster. Survivors get one history entry capturing
// their pre-promotion standing, then grade+1 capped at 12 and AS+1 capped
// at 4 with both semester activity lists reset.
func promoteCadets(roster []models.Cadet, fromYear, toYear *models.SchoolYear) (promoted, graduates []models.Cadet) {
	for _, cadet := range roster {
		if cadet.Grade == models.MaxGrade {
			graduates = append(graduates, cadet)
			continue
		}

		entry := models.HistoryEntry{
			SchoolYearID:        fromYear.ID,
			SchoolYearName:      fromYear.Name,
			Grade:               cadet.Grade,
			ASLevel:             cadet.ASLevel,
			Flight:              cadet.Flight,
			Semester1Activities: append(models.StringList{}, cadet.Semester1Activities...),
			Semester2Activities: append(models.StringList{}, cadet.Semester2Activities...),
		}

		next := cadet
		next.ID = uuid.Nil // fresh record in the incoming year
		next.SchoolYearID = toYear.ID
		next.Grade = min(cadet.Grade+1, models.MaxGrade)
		next.ASLevel = min(cadet.ASLevel+1, models.MaxASLevel)
		next.Semester1Activities = models.StringList{}
		next.Semester2Activities = models.StringList{}
		next.YearlyHistory = append(append(models.HistoryEntries{}, cadet.YearlyHistory...), entry)

		promoted = append(promoted, next)
	}
	return promoted, graduates
}

func (s *SchoolYearService) publish(eventType string, year *models.SchoolYear) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:         eventType,
		Entity:       "school_year",
		SchoolYearID: year.ID,
		Payload:      s.toResponse(year),
	})
}

func (s *SchoolYearService) toResponse(year *models.SchoolYear) *SchoolYearResponse {
	return &SchoolYearResponse{
		ID:        year.ID,
		Name:      year.Name,
		StartYear: year.StartYear,
		EndYear:   year.EndYear,
		IsActive:  year.IsActive,
		CreatedAt: year.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: year.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
