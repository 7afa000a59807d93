package service

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock implementations of the repository interfaces for service tests.

type MockSchoolYearRepository struct {
	mock.Mock
}

func (m *MockSchoolYearRepository) Create(year *models.SchoolYear) error {
	args := m.Called(year)
	return args.Error(0)
}

func (m *MockSchoolYearRepository) GetByID(id uuid.UUID) (*models.SchoolYear, error) {
	args := m.Called(id)
	year, _ := args.Get(0).(*models.SchoolYear)
	return year, args.Error(1)
}

func (m *MockSchoolYearRepository) GetByName(name string) (*models.SchoolYear, error) {
	args := m.Called(name)
	year, _ := args.Get(0).(*models.SchoolYear)
	return year, args.Error(1)
}

func (m *MockSchoolYearRepository) GetAll(limit, offset int) ([]models.SchoolYear, int64, error) {
	args := m.Called(limit, offset)
	years, _ := args.Get(0).([]models.SchoolYear)
	total, _ := args.Get(1).(int64)
	return years, total, args.Error(2)
}

func (m *MockSchoolYearRepository) GetActive() (*models.SchoolYear, error) {
	args := m.Called()
	year, _ := args.Get(0).(*models.SchoolYear)
	return year, args.Error(1)
}

func (m *MockSchoolYearRepository) SetActive(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSchoolYearRepository) Update(year *models.SchoolYear) error {
	args := m.Called(year)
	return args.Error(0)
}

func (m *MockSchoolYearRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSchoolYearRepository) GetWithCadets(id uuid.UUID) (*models.SchoolYear, error) {
	args := m.Called(id)
	year, _ := args.Get(0).(*models.SchoolYear)
	return year, args.Error(1)
}

func (m *MockSchoolYearRepository) GetGraph() ([]models.SchoolYear, error) {
	args := m.Called()
	years, _ := args.Get(0).([]models.SchoolYear)
	return years, args.Error(1)
}

func (m *MockSchoolYearRepository) ReplaceGraph(years []models.SchoolYear) error {
	args := m.Called(years)
	return args.Error(0)
}

type MockCadetRepository struct {
	mock.Mock
}

func (m *MockCadetRepository) Create(cadet *models.Cadet) error {
	args := m.Called(cadet)
	return args.Error(0)
}

func (m *MockCadetRepository) CreateBatch(cadets []models.Cadet) error {
	args := m.Called(cadets)
	return args.Error(0)
}

func (m *MockCadetRepository) GetByID(id uuid.UUID) (*models.Cadet, error) {
	args := m.Called(id)
	cadet, _ := args.Get(0).(*models.Cadet)
	return cadet, args.Error(1)
}

func (m *MockCadetRepository) GetBySchoolYearID(schoolYearID uuid.UUID, limit, offset int) ([]models.Cadet, int64, error) {
	args := m.Called(schoolYearID, limit, offset)
	cadets, _ := args.Get(0).([]models.Cadet)
	total, _ := args.Get(1).(int64)
	return cadets, total, args.Error(2)
}

func (m *MockCadetRepository) GetAllBySchoolYearID(schoolYearID uuid.UUID) ([]models.Cadet, error) {
	args := m.Called(schoolYearID)
	cadets, _ := args.Get(0).([]models.Cadet)
	return cadets, args.Error(1)
}

func (m *MockCadetRepository) Update(cadet *models.Cadet) error {
	args := m.Called(cadet)
	return args.Error(0)
}

func (m *MockCadetRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCadetRepository) DeleteBySchoolYearID(schoolYearID uuid.UUID) error {
	args := m.Called(schoolYearID)
	return args.Error(0)
}

type MockChainOfCommandRepository struct {
	mock.Mock
}

func (m *MockChainOfCommandRepository) Create(chart *models.ChainOfCommand) error {
	args := m.Called(chart)
	return args.Error(0)
}

func (m *MockChainOfCommandRepository) GetByID(id uuid.UUID) (*models.ChainOfCommand, error) {
	args := m.Called(id)
	chart, _ := args.Get(0).(*models.ChainOfCommand)
	return chart, args.Error(1)
}

func (m *MockChainOfCommandRepository) GetWithPositions(id uuid.UUID) (*models.ChainOfCommand, error) {
	args := m.Called(id)
	chart, _ := args.Get(0).(*models.ChainOfCommand)
	return chart, args.Error(1)
}

func (m *MockChainOfCommandRepository) GetBySchoolYearID(schoolYearID uuid.UUID) ([]models.ChainOfCommand, error) {
	args := m.Called(schoolYearID)
	charts, _ := args.Get(0).([]models.ChainOfCommand)
	return charts, args.Error(1)
}

func (m *MockChainOfCommandRepository) Update(chart *models.ChainOfCommand) error {
	args := m.Called(chart)
	return args.Error(0)
}

func (m *MockChainOfCommandRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) Create(position *models.Position) error {
	args := m.Called(position)
	return args.Error(0)
}

func (m *MockPositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	args := m.Called(id)
	position, _ := args.Get(0).(*models.Position)
	return position, args.Error(1)
}

func (m *MockPositionRepository) GetByChartID(chartID uuid.UUID) ([]models.Position, error) {
	args := m.Called(chartID)
	positions, _ := args.Get(0).([]models.Position)
	return positions, args.Error(1)
}

func (m *MockPositionRepository) Update(position *models.Position) error {
	args := m.Called(position)
	return args.Error(0)
}

func (m *MockPositionRepository) UpdateBatch(positions []models.Position) error {
	args := m.Called(positions)
	return args.Error(0)
}

func (m *MockPositionRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPositionRepository) ReplaceForChart(chartID uuid.UUID, positions []models.Position) error {
	args := m.Called(chartID, positions)
	return args.Error(0)
}

type MockActivityCatalogRepository struct {
	mock.Mock
}

func (m *MockActivityCatalogRepository) GetOrCreate() (*models.ActivityCatalog, error) {
	args := m.Called()
	catalog, _ := args.Get(0).(*models.ActivityCatalog)
	return catalog, args.Error(1)
}

func (m *MockActivityCatalogRepository) Replace(activities models.StringList) (*models.ActivityCatalog, error) {
	args := m.Called(activities)
	catalog, _ := args.Get(0).(*models.ActivityCatalog)
	return catalog, args.Error(1)
}

type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) GetBySubject(subject string) (*models.UserProfile, error) {
	args := m.Called(subject)
	profile, _ := args.Get(0).(*models.UserProfile)
	return profile, args.Error(1)
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Update(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}
