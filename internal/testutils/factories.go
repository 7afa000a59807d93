package testutils

import (
	"fmt"
	"time"

	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
)

// SchoolYearFactory provides methods to create test SchoolYear data
type SchoolYearFactory struct{}

// NewSchoolYearFactory creates a new SchoolYearFactory
func NewSchoolYearFactory() *SchoolYearFactory {
	return &SchoolYearFactory{}
}

// Create creates a test SchoolYear with default values
func (f *SchoolYearFactory) Create() *models.SchoolYear {
	return &models.SchoolYear{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "2025-2026",
		StartYear: 2025,
		EndYear:   2026,
		IsActive:  false,
	}
}

// WithName sets a custom name for the school year
func (f *SchoolYearFactory) WithName(name string) *models.SchoolYear {
	year := f.Create()
	year.Name = name
	return year
}

// WithRange sets the start and end years, deriving the name
func (f *SchoolYearFactory) WithRange(start, end int) *models.SchoolYear {
	year := f.Create()
	year.StartYear = start
	year.EndYear = end
	year.Name = fmt.Sprintf("%d-%d", start, end)
	return year
}

// Active marks the year active
func (f *SchoolYearFactory) Active() *models.SchoolYear {
	year := f.Create()
	year.IsActive = true
	return year
}

// CadetFactory provides methods to create test Cadet data
type CadetFactory struct{}

// NewCadetFactory creates a new CadetFactory
func NewCadetFactory() *CadetFactory {
	return &CadetFactory{}
}

// Create creates a test Cadet with default values
func (f *CadetFactory) Create() *models.Cadet {
	id := uuid.New()
	return &models.Cadet{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SchoolYearID:        uuid.New(),
		FirstName:           "Jordan",
		LastName:            "Reyes",
		Rank:                models.DefaultRank(),
		Grade:               9,
		ASLevel:             1,
		Flight:              "Alpha",
		Email:               fmt.Sprintf("cadet-%s@test.com", id.String()[:8]),
		Semester1Activities: models.StringList{},
		Semester2Activities: models.StringList{},
		YearlyHistory:       models.HistoryEntries{},
	}
}

// WithSchoolYear sets the school year ID for the cadet
func (f *CadetFactory) WithSchoolYear(yearID uuid.UUID) *models.Cadet {
	cadet := f.Create()
	cadet.SchoolYearID = yearID
	return cadet
}

// WithGrade sets the school year ID and grade for the cadet
func (f *CadetFactory) WithGrade(yearID uuid.UUID, grade int) *models.Cadet {
	cadet := f.Create()
	cadet.SchoolYearID = yearID
	cadet.Grade = grade
	return cadet
}

// WithName sets a custom name for the cadet
func (f *CadetFactory) WithName(yearID uuid.UUID, first, last string) *models.Cadet {
	cadet := f.Create()
	cadet.SchoolYearID = yearID
	cadet.FirstName = first
	cadet.LastName = last
	return cadet
}

// ChartFactory provides methods to create test ChainOfCommand data
type ChartFactory struct{}

// NewChartFactory creates a new ChartFactory
func NewChartFactory() *ChartFactory {
	return &ChartFactory{}
}

// Create creates a test ChainOfCommand with default values
func (f *ChartFactory) Create() *models.ChainOfCommand {
	return &models.ChainOfCommand{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SchoolYearID: uuid.New(),
		Name:         "Test Chart",
		Description:  "A chain of command chart for testing",
	}
}

// WithSchoolYear sets the school year ID for the chart
func (f *ChartFactory) WithSchoolYear(yearID uuid.UUID) *models.ChainOfCommand {
	chart := f.Create()
	chart.SchoolYearID = yearID
	return chart
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test Position with default values
func (f *PositionFactory) Create() *models.Position {
	return &models.Position{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ChainOfCommandID: uuid.New(),
		Title:            "Flight Commander",
		Rank:             "Cadet Captain",
		Level:            2,
		MaxCadets:        1,
		AssignedCadets:   models.UUIDList{},
	}
}

// WithChart sets the chart ID for the position
func (f *PositionFactory) WithChart(chartID uuid.UUID) *models.Position {
	position := f.Create()
	position.ChainOfCommandID = chartID
	return position
}

// WithCapacity sets the chart ID and capacity for the position
func (f *PositionFactory) WithCapacity(chartID uuid.UUID, maxCadets int) *models.Position {
	position := f.Create()
	position.ChainOfCommandID = chartID
	position.MaxCadets = maxCadets
	return position
}

// FactorySet provides access to all factories
type FactorySet struct {
	SchoolYear  *SchoolYearFactory
	Cadet       *CadetFactory
	Chart       *ChartFactory
	Position    *PositionFactory
	UserProfile *UserProfileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		SchoolYear:  NewSchoolYearFactory(),
		Cadet:       NewCadetFactory(),
		Chart:       NewChartFactory(),
		Position:    NewPositionFactory(),
		UserProfile: NewUserProfileFactory(),
	}
}

// UserProfileFactory provides methods to create test UserProfile data
type UserProfileFactory struct{}

// NewUserProfileFactory creates a new UserProfileFactory
func NewUserProfileFactory() *UserProfileFactory {
	return &UserProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *UserProfileFactory) Create() *models.UserProfile {
	subject := "sub-" + uuid.NewString()[:8]
	return &models.UserProfile{
		Subject:     subject,
		Email:       subject + "@test.com",
		DisplayName: "Test Instructor",
		Role:        models.UserRoleInstructor,
		LastLogin:   time.Now(),
	}
}
