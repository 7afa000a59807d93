//go:build integration
// +build integration

package repository

import (
	"testing"

	"cadet-corps-backend/internal/database/models"
	"cadet-corps-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SchoolYearRepositoryTestSuite tests the SchoolYearRepository
type SchoolYearRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SchoolYearRepository
	cadetRepo     *CadetRepository
	chartRepo     *ChainOfCommandRepository
	positionRepo  *PositionRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SchoolYearRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewSchoolYearRepository(suite.baseTestSuite.DB)
	suite.cadetRepo = NewCadetRepository(suite.baseTestSuite.DB)
	suite.chartRepo = NewChainOfCommandRepository(suite.baseTestSuite.DB)
	suite.positionRepo = NewPositionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SchoolYearRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SchoolYearRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SchoolYearRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new school year
func (suite *SchoolYearRepositoryTestSuite) TestCreate() {
	year := suite.factories.SchoolYear.Create()

	err := suite.repo.Create(year)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, year.ID)
	suite.NotZero(year.CreatedAt)
}

// TestGetByIDNotFound tests retrieving a non-existent school year
func (suite *SchoolYearRepositoryTestSuite) TestGetByIDNotFound() {
	year, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(year)
}

// TestGetByName tests retrieving a school year by name
func (suite *SchoolYearRepositoryTestSuite) TestGetByName() {
	year := suite.factories.SchoolYear.WithName("2030-2031")
	suite.NoError(suite.repo.Create(year))

	retrieved, err := suite.repo.GetByName("2030-2031")

	suite.NoError(err)
	suite.Equal(year.ID, retrieved.ID)
}

// TestSetActiveIsExclusive tests that activating a year clears the previous holder
func (suite *SchoolYearRepositoryTestSuite) TestSetActiveIsExclusive() {
	first := suite.factories.SchoolYear.WithRange(2024, 2025)
	second := suite.factories.SchoolYear.WithRange(2025, 2026)
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	suite.NoError(suite.repo.SetActive(first.ID))
	suite.NoError(suite.repo.SetActive(second.ID))

	active, err := suite.repo.GetActive()
	suite.NoError(err)
	suite.Equal(second.ID, active.ID)

	refetched, err := suite.repo.GetByID(first.ID)
	suite.NoError(err)
	suite.False(refetched.IsActive)
}

// TestSetActiveUnknownYear tests activating a non-existent year
func (suite *SchoolYearRepositoryTestSuite) TestSetActiveUnknownYear() {
	err := suite.repo.SetActive(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascades tests that deleting a year removes its cadets, charts and positions
func (suite *SchoolYearRepositoryTestSuite) TestDeleteCascades() {
	year := suite.factories.SchoolYear.Create()
	suite.NoError(suite.repo.Create(year))

	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)
	suite.NoError(suite.cadetRepo.Create(cadet))

	chart := suite.factories.Chart.WithSchoolYear(year.ID)
	suite.NoError(suite.chartRepo.Create(chart))

	position := suite.factories.Position.WithChart(chart.ID)
	suite.NoError(suite.positionRepo.Create(position))

	suite.NoError(suite.repo.Delete(year.ID))

	_, err := suite.repo.GetByID(year.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = suite.cadetRepo.GetByID(cadet.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = suite.chartRepo.GetByID(chart.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = suite.positionRepo.GetByID(position.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetGraph tests loading the full entity graph
func (suite *SchoolYearRepositoryTestSuite) TestGetGraph() {
	year := suite.factories.SchoolYear.Create()
	suite.NoError(suite.repo.Create(year))

	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)
	suite.NoError(suite.cadetRepo.Create(cadet))

	chart := suite.factories.Chart.WithSchoolYear(year.ID)
	suite.NoError(suite.chartRepo.Create(chart))

	position := suite.factories.Position.WithChart(chart.ID)
	suite.NoError(suite.positionRepo.Create(position))

	graph, err := suite.repo.GetGraph()

	suite.NoError(err)
	suite.Len(graph, 1)
	suite.Len(graph[0].Cadets, 1)
	suite.Len(graph[0].ChainOfCommands, 1)
	suite.Len(graph[0].ChainOfCommands[0].Positions, 1)
}

// TestReplaceGraph tests the all-or-nothing graph swap used by import
func (suite *SchoolYearRepositoryTestSuite) TestReplaceGraph() {
	old := suite.factories.SchoolYear.WithName("old-year")
	suite.NoError(suite.repo.Create(old))

	incoming := suite.factories.SchoolYear.WithName("imported-year")
	incomingCadet := suite.factories.Cadet.WithSchoolYear(incoming.ID)
	incoming.Cadets = append(incoming.Cadets, *incomingCadet)

	suite.NoError(suite.repo.ReplaceGraph([]models.SchoolYear{*incoming}))

	_, err := suite.repo.GetByName("old-year")
	suite.Equal(gorm.ErrRecordNotFound, err)

	replaced, err := suite.repo.GetByName("imported-year")
	suite.NoError(err)

	roster, err := suite.cadetRepo.GetAllBySchoolYearID(replaced.ID)
	suite.NoError(err)
	suite.Len(roster, 1)
}

// Run the test suite
func TestSchoolYearRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolYearRepositoryTestSuite))
}
