package service

import (
	"errors"
	"fmt"
	"strings"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/events"
	"cadet-corps-backend/internal/logger"
	"cadet-corps-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChainOfCommandService handles business logic for charts, their positions
// and cadet assignments. It is the keeper of the one real invariant in the
// system: a cadet occupies at most one position within a single chart.
type ChainOfCommandService struct {
	repo         repository.ChainOfCommandRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	cadetRepo    repository.CadetRepositoryInterface
	yearRepo     repository.SchoolYearRepositoryInterface
	validator    *validator.Validate
	bus          *events.Bus
}

// NewChainOfCommandService creates a new chart service
func NewChainOfCommandService(repo repository.ChainOfCommandRepositoryInterface, positionRepo repository.PositionRepositoryInterface, cadetRepo repository.CadetRepositoryInterface, yearRepo repository.SchoolYearRepositoryInterface, validator *validator.Validate, bus *events.Bus) *ChainOfCommandService {
	return &ChainOfCommandService{
		repo:         repo,
		positionRepo: positionRepo,
		cadetRepo:    cadetRepo,
		yearRepo:     yearRepo,
		validator:    validator,
		bus:          bus,
	}
}

// CreateChartRequest represents the request to create a chart
type CreateChartRequest struct {
	SchoolYearID uuid.UUID `json:"school_year_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Description  string    `json:"description,omitempty" validate:"max=500"`
	// Template optionally seeds the chart's positions on creation.
	Template string `json:"template,omitempty"`
}

// UpdateChartRequest represents the request to update a chart
type UpdateChartRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// PositionRequest represents the request to add a position
type PositionRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=100"`
	Rank      string `json:"rank,omitempty" validate:"max=100"`
	Level     int    `json:"level,omitempty"`
	X         int    `json:"x,omitempty"`
	Y         int    `json:"y,omitempty"`
	Notes     string `json:"notes,omitempty" validate:"max=500"`
	MaxCadets int    `json:"max_cadets,omitempty" validate:"omitempty,min=1,max=50"`
}

// UpdatePositionRequest represents a partial update of a position. Nil
// fields are left unchanged.
type UpdatePositionRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Rank      *string `json:"rank,omitempty" validate:"omitempty,max=100"`
	Level     *int    `json:"level,omitempty" validate:"omitempty,min=1"`
	X         *int    `json:"x,omitempty"`
	Y         *int    `json:"y,omitempty"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	MaxCadets *int    `json:"max_cadets,omitempty" validate:"omitempty,min=1,max=50"`
}

// AssignRequest represents the request to assign or unassign a cadet
type AssignRequest struct {
	CadetID uuid.UUID `json:"cadet_id" validate:"required"`
}

// ExpandTemplateRequest names the template to install into a chart
type ExpandTemplateRequest struct {
	Template string `json:"template" validate:"required"`
}

// PositionResponse represents the response for position operations
type PositionResponse struct {
	ID               uuid.UUID   `json:"id"`
	ChainOfCommandID uuid.UUID   `json:"chain_of_command_id"`
	Title            string      `json:"title"`
	Rank             string      `json:"rank"`
	Level            int         `json:"level"`
	X                int         `json:"x"`
	Y                int         `json:"y"`
	Notes            string      `json:"notes,omitempty"`
	MaxCadets        int         `json:"max_cadets"`
	AssignedCadets   []uuid.UUID `json:"assigned_cadets"`
}

// ChartResponse represents the response for chart operations
type ChartResponse struct {
	ID           uuid.UUID          `json:"id"`
	SchoolYearID uuid.UUID          `json:"school_year_id"`
	Name         string             `json:"name"`
	Description  string             `json:"description,omitempty"`
	Positions    []PositionResponse `json:"positions,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

// Create creates a new chart, optionally seeding positions from a template
func (s *ChainOfCommandService) Create(req *CreateChartRequest) (*ChartResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.yearRepo.GetByID(req.SchoolYearID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to verify school year: %w", err)
	}

	chart := &models.ChainOfCommand{
		SchoolYearID: req.SchoolYearID,
		Name:         req.Name,
		Description:  req.Description,
	}
	if err := s.repo.Create(chart); err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	if req.Template != "" {
		positions := buildPositions(ExpandTemplate(req.Template))
		if err := s.positionRepo.ReplaceForChart(chart.ID, positions); err != nil {
			return nil, fmt.Errorf("failed to install template: %w", err)
		}
		chart.Positions = positions
	}

	s.publish("created", chart)
	return s.toResponse(chart), nil
}

// GetByID retrieves a chart with its positions
func (s *ChainOfCommandService) GetByID(id uuid.UUID) (*ChartResponse, error) {
	chart, err := s.repo.GetWithPositions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}
	return s.toResponse(chart), nil
}

// GetBySchoolYear retrieves all charts of a school year (without positions)
func (s *ChainOfCommandService) GetBySchoolYear(schoolYearID uuid.UUID) ([]ChartResponse, error) {
	if _, err := s.yearRepo.GetByID(schoolYearID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSchoolYearNotFound
		}
		return nil, fmt.Errorf("failed to verify school year: %w", err)
	}

	charts, err := s.repo.GetBySchoolYearID(schoolYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to get charts: %w", err)
	}

	responses := make([]ChartResponse, len(charts))
	for i, chart := range charts {
		responses[i] = *s.toResponse(&chart)
	}
	return responses, nil
}

// Update updates a chart's name or description
func (s *ChainOfCommandService) Update(id uuid.UUID, req *UpdateChartRequest) (*ChartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	if req.Name != nil {
		chart.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		chart.Description = *req.Description
	}

	if err := s.repo.Update(chart); err != nil {
		return nil, fmt.Errorf("failed to update chart: %w", err)
	}

	s.publish("updated", chart)
	return s.toResponse(chart), nil
}

// Delete removes a chart and its positions. Cadets are unaffected.
func (s *ChainOfCommandService) Delete(id uuid.UUID) error {
	chart, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChainOfCommandNotFound
		}
		return fmt.Errorf("failed to get chart: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete chart: %w", err)
	}

	s.publish("deleted", chart)
	return nil
}

// AddPosition adds a position to a chart
func (s *ChainOfCommandService) AddPosition(chartID uuid.UUID, req *PositionRequest) (*PositionResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, err := s.repo.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	maxCadets := req.MaxCadets
	if maxCadets < 1 {
		maxCadets = 1
	}
	level := req.Level
	if level < 1 {
		level = 1
	}

	position := &models.Position{
		ChainOfCommandID: chart.ID,
		Title:            req.Title,
		Rank:             req.Rank,
		Level:            level,
		X:                req.X,
		Y:                req.Y,
		Notes:            req.Notes,
		MaxCadets:        maxCadets,
		AssignedCadets:   models.UUIDList{},
	}
	if err := s.positionRepo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	s.touch(chart, "position_added")
	return toPositionResponse(position), nil
}

// UpdatePosition applies a partial update to a position's descriptive
// fields. Shrinking MaxCadets below the current occupancy is rejected.
func (s *ChainOfCommandService) UpdatePosition(chartID, positionID uuid.UUID, req *UpdatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, position, err := s.chartPosition(chartID, positionID)
	if err != nil {
		return nil, err
	}

	if req.MaxCadets != nil && *req.MaxCadets < len(position.AssignedCadets) {
		return nil, &apperrors.ValidationError{
			Field:   "max_cadets",
			Message: fmt.Sprintf("cannot shrink below current occupancy of %d", len(position.AssignedCadets)),
		}
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, &apperrors.ValidationError{Field: "title", Message: "must not be empty"}
		}
		position.Title = title
	}
	if req.Rank != nil {
		position.Rank = *req.Rank
	}
	if req.Level != nil {
		position.Level = *req.Level
	}
	if req.X != nil {
		position.X = *req.X
	}
	if req.Y != nil {
		position.Y = *req.Y
	}
	if req.Notes != nil {
		position.Notes = *req.Notes
	}
	if req.MaxCadets != nil {
		position.MaxCadets = *req.MaxCadets
	}

	if err := s.positionRepo.Update(position); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}

	s.touch(chart, "position_updated")
	return toPositionResponse(position), nil
}

// DeletePosition removes a position. Its occupants are simply unseated, not
// reassigned elsewhere.
func (s *ChainOfCommandService) DeletePosition(chartID, positionID uuid.UUID) error {
	chart, _, err := s.chartPosition(chartID, positionID)
	if err != nil {
		return err
	}

	if err := s.positionRepo.Delete(positionID); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	s.touch(chart, "position_deleted")
	return nil
}

// AssignCadet seats a cadet in a position. Assignment is move semantics: the
// cadet is first removed from every other position in the chart, then added
// iff the target has room, otherwise the call fails with AtCapacityError and
// nothing changes.
func (s *ChainOfCommandService) AssignCadet(chartID, positionID uuid.UUID, req *AssignRequest) (*ChartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, err := s.repo.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	cadet, err := s.cadetRepo.GetByID(req.CadetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCadetNotFound
		}
		return nil, fmt.Errorf("failed to get cadet: %w", err)
	}
	if cadet.SchoolYearID != chart.SchoolYearID {
		return nil, apperrors.ErrCadetNotInYear
	}

	positions, err := s.positionRepo.GetByChartID(chartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}

	dirty, err := applyAssign(positions, positionID, cadet.ID)
	if err != nil {
		return nil, err
	}
	if err := s.positionRepo.UpdateBatch(dirty); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	s.touch(chart, "cadet_assigned")
	chart.Positions = positions
	return s.toResponse(chart), nil
}

// UnassignCadet removes a cadet from a position; a cadet that is not seated
// there is a no-op.
func (s *ChainOfCommandService) UnassignCadet(chartID, positionID uuid.UUID, req *AssignRequest) (*ChartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, position, err := s.chartPosition(chartID, positionID)
	if err != nil {
		return nil, err
	}

	if changed := applyUnassign(position, req.CadetID); changed {
		if err := s.positionRepo.Update(position); err != nil {
			return nil, fmt.Errorf("failed to save unassignment: %w", err)
		}
		s.touch(chart, "cadet_unassigned")
	}

	return s.GetByID(chartID)
}

// InstallTemplate replaces the chart's entire position set with a fresh
// expansion of the named template. All prior positions and assignments are
// discarded; the swap is all-or-nothing. Unknown names fall back to the
// default template.
func (s *ChainOfCommandService) InstallTemplate(chartID uuid.UUID, req *ExpandTemplateRequest) (*ChartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	chart, err := s.repo.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}

	positions := buildPositions(ExpandTemplate(req.Template))
	if err := s.positionRepo.ReplaceForChart(chart.ID, positions); err != nil {
		return nil, fmt.Errorf("failed to install template: %w", err)
	}

	s.touch(chart, "template_installed")
	return s.GetByID(chartID)
}

// applyAssign performs the in-memory move: the cadet leaves every position in
// the chart, then joins the target if it has room. Returns the positions that
// changed. On AtCapacityError no position is modified.
func applyAssign(positions []models.Position, positionID, cadetID uuid.UUID) ([]models.Position, error) {
	targetIdx := -1
	for i := range positions {
		if positions[i].ID == positionID {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, apperrors.ErrPositionNotFound
	}

	target := &positions[targetIdx]
	if target.AssignedCadets.Contains(cadetID) {
		// already seated where requested
		return nil, nil
	}
	if target.AtCapacity() {
		return nil, &apperrors.AtCapacityError{PositionTitle: target.Title, MaxCadets: target.MaxCadets}
	}

	var dirty []models.Position
	for i := range positions {
		if i == targetIdx {
			continue
		}
		if remaining, removed := positions[i].AssignedCadets.Remove(cadetID); removed {
			positions[i].AssignedCadets = remaining
			dirty = append(dirty, positions[i])
		}
	}

	target.AssignedCadets = append(target.AssignedCadets, cadetID)
	dirty = append(dirty, *target)
	return dirty, nil
}

// applyUnassign removes the cadet from the position, reporting whether
// anything changed.
func applyUnassign(position *models.Position, cadetID uuid.UUID) bool {
	remaining, removed := position.AssignedCadets.Remove(cadetID)
	if removed {
		position.AssignedCadets = remaining
	}
	return removed
}

func (s *ChainOfCommandService) chartPosition(chartID, positionID uuid.UUID) (*models.ChainOfCommand, *models.Position, error) {
	chart, err := s.repo.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrChainOfCommandNotFound
		}
		return nil, nil, fmt.Errorf("failed to get chart: %w", err)
	}

	position, err := s.positionRepo.GetByID(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrPositionNotFound
		}
		return nil, nil, fmt.Errorf("failed to get position: %w", err)
	}
	if position.ChainOfCommandID != chart.ID {
		return nil, nil, apperrors.ErrPositionNotInChart
	}

	return chart, position, nil
}

// touch persists the chart's updated timestamp and publishes a change event.
// The position mutation itself is already saved at this point, so a failed
// timestamp write is logged rather than surfaced.
func (s *ChainOfCommandService) touch(chart *models.ChainOfCommand, eventType string) {
	if err := s.repo.Update(chart); err != nil {
		logger.New().WithField("chart_id", chart.ID).WithError(err).Warn("failed to persist chart timestamp")
	}
	s.publish(eventType, chart)
}

func (s *ChainOfCommandService) publish(eventType string, chart *models.ChainOfCommand) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.Event{
		Type:         eventType,
		Entity:       "chain_of_command",
		SchoolYearID: chart.SchoolYearID,
		ChartID:      chart.ID,
	})
}

func toPositionResponse(position *models.Position) *PositionResponse {
	return &PositionResponse{
		ID:               position.ID,
		ChainOfCommandID: position.ChainOfCommandID,
		Title:            position.Title,
		Rank:             position.Rank,
		Level:            position.Level,
		X:                position.X,
		Y:                position.Y,
		Notes:            position.Notes,
		MaxCadets:        position.MaxCadets,
		AssignedCadets:   position.AssignedCadets,
	}
}

func (s *ChainOfCommandService) toResponse(chart *models.ChainOfCommand) *ChartResponse {
	resp := &ChartResponse{
		ID:           chart.ID,
		SchoolYearID: chart.SchoolYearID,
		Name:         chart.Name,
		Description:  chart.Description,
		CreatedAt:    chart.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    chart.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if chart.Positions != nil {
		resp.Positions = make([]PositionResponse, len(chart.Positions))
		for i := range chart.Positions {
			resp.Positions[i] = *toPositionResponse(&chart.Positions[i])
		}
	}
	return resp
}
