package repository

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
)

// SchoolYearRepositoryInterface defines the interface for school year repository operations
type SchoolYearRepositoryInterface interface {
	Create(year *models.SchoolYear) error
	GetByID(id uuid.UUID) (*models.SchoolYear, error)
	GetByName(name string) (*models.SchoolYear, error)
	GetAll(limit, offset int) ([]models.SchoolYear, int64, error)
	GetActive() (*models.SchoolYear, error)
	SetActive(id uuid.UUID) error
	Update(year *models.SchoolYear) error
	Delete(id uuid.UUID) error
	GetWithCadets(id uuid.UUID) (*models.SchoolYear, error)
	GetGraph() ([]models.SchoolYear, error)
	ReplaceGraph(years []models.SchoolYear) error
}

// CadetRepositoryInterface defines the interface for cadet repository operations
type CadetRepositoryInterface interface {
	Create(cadet *models.Cadet) error
	CreateBatch(cadets []models.Cadet) error
	GetByID(id uuid.UUID) (*models.Cadet, error)
	GetBySchoolYearID(schoolYearID uuid.UUID, limit, offset int) ([]models.Cadet, int64, error)
	GetAllBySchoolYearID(schoolYearID uuid.UUID) ([]models.Cadet, error)
	Update(cadet *models.Cadet) error
	Delete(id uuid.UUID) error
	DeleteBySchoolYearID(schoolYearID uuid.UUID) error
}

// ChainOfCommandRepositoryInterface defines the interface for chart repository operations
type ChainOfCommandRepositoryInterface interface {
	Create(chart *models.ChainOfCommand) error
	GetByID(id uuid.UUID) (*models.ChainOfCommand, error)
	GetWithPositions(id uuid.UUID) (*models.ChainOfCommand, error)
	GetBySchoolYearID(schoolYearID uuid.UUID) ([]models.ChainOfCommand, error)
	Update(chart *models.ChainOfCommand) error
	Delete(id uuid.UUID) error
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(position *models.Position) error
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByChartID(chartID uuid.UUID) ([]models.Position, error)
	Update(position *models.Position) error
	UpdateBatch(positions []models.Position) error
	Delete(id uuid.UUID) error
	ReplaceForChart(chartID uuid.UUID, positions []models.Position) error
}

// ActivityCatalogRepositoryInterface defines the interface for the activity catalog
type ActivityCatalogRepositoryInterface interface {
	GetOrCreate() (*models.ActivityCatalog, error)
	Replace(activities models.StringList) (*models.ActivityCatalog, error)
}

// UserProfileRepositoryInterface defines the interface for user profile repository operations
type UserProfileRepositoryInterface interface {
	GetBySubject(subject string) (*models.UserProfile, error)
	Create(profile *models.UserProfile) error
	Update(profile *models.UserProfile) error
}
