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

// CadetRepositoryTestSuite tests the CadetRepository
type CadetRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CadetRepository
	yearRepo      *SchoolYearRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CadetRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCadetRepository(suite.baseTestSuite.DB)
	suite.yearRepo = NewSchoolYearRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CadetRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CadetRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CadetRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CadetRepositoryTestSuite) createYear() *models.SchoolYear {
	year := suite.factories.SchoolYear.Create()
	suite.Require().NoError(suite.yearRepo.Create(year))
	return year
}

// TestCreate tests creating a new cadet
func (suite *CadetRepositoryTestSuite) TestCreate() {
	year := suite.createYear()
	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)

	err := suite.repo.Create(cadet)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(cadet.ID)
	suite.NoError(err)
	suite.Equal("Jordan", retrieved.FirstName)
	suite.Equal(year.ID, retrieved.SchoolYearID)
}

// TestCreateBatch tests creating a full roster in one call
func (suite *CadetRepositoryTestSuite) TestCreateBatch() {
	year := suite.createYear()
	roster := []models.Cadet{
		*suite.factories.Cadet.WithName(year.ID, "Avery", "Cole"),
		*suite.factories.Cadet.WithName(year.ID, "Morgan", "Diaz"),
		*suite.factories.Cadet.WithName(year.ID, "Riley", "Novak"),
	}

	err := suite.repo.CreateBatch(roster)

	suite.NoError(err)

	all, err := suite.repo.GetAllBySchoolYearID(year.ID)
	suite.NoError(err)
	suite.Len(all, 3)
}

// TestCreateBatchEmpty tests that an empty roster is a no-op
func (suite *CadetRepositoryTestSuite) TestCreateBatchEmpty() {
	suite.NoError(suite.repo.CreateBatch(nil))
}

// TestGetAllBySchoolYearIDScopesToYear tests that rosters do not leak across years
func (suite *CadetRepositoryTestSuite) TestGetAllBySchoolYearIDScopesToYear() {
	first := suite.createYear()
	second := suite.factories.SchoolYear.WithName("2026-2027")
	suite.Require().NoError(suite.yearRepo.Create(second))

	suite.NoError(suite.repo.Create(suite.factories.Cadet.WithSchoolYear(first.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Cadet.WithSchoolYear(second.ID)))

	roster, err := suite.repo.GetAllBySchoolYearID(first.ID)

	suite.NoError(err)
	suite.Len(roster, 1)
	suite.Equal(first.ID, roster[0].SchoolYearID)
}

// TestGetBySchoolYearIDPaginates tests limit and offset handling
func (suite *CadetRepositoryTestSuite) TestGetBySchoolYearIDPaginates() {
	year := suite.createYear()
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Cadet.WithSchoolYear(year.ID)))
	}

	page, total, err := suite.repo.GetBySchoolYearID(year.ID, 2, 2)

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page, 2)
}

// TestUpdate tests persisting cadet field changes
func (suite *CadetRepositoryTestSuite) TestUpdate() {
	year := suite.createYear()
	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)
	suite.Require().NoError(suite.repo.Create(cadet))

	cadet.Grade = 11
	cadet.Semester1Activities = models.StringList{"Drill Team"}
	suite.NoError(suite.repo.Update(cadet))

	retrieved, err := suite.repo.GetByID(cadet.ID)
	suite.NoError(err)
	suite.Equal(11, retrieved.Grade)
	suite.Equal(models.StringList{"Drill Team"}, retrieved.Semester1Activities)
}

// TestDelete tests removing a cadet
func (suite *CadetRepositoryTestSuite) TestDelete() {
	year := suite.createYear()
	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)
	suite.Require().NoError(suite.repo.Create(cadet))

	suite.NoError(suite.repo.Delete(cadet.ID))

	_, err := suite.repo.GetByID(cadet.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteBySchoolYearID tests clearing a year's roster
func (suite *CadetRepositoryTestSuite) TestDeleteBySchoolYearID() {
	year := suite.createYear()
	suite.Require().NoError(suite.repo.Create(suite.factories.Cadet.WithSchoolYear(year.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Cadet.WithSchoolYear(year.ID)))

	suite.NoError(suite.repo.DeleteBySchoolYearID(year.ID))

	roster, err := suite.repo.GetAllBySchoolYearID(year.ID)
	suite.NoError(err)
	suite.Empty(roster)
}

// TestYearlyHistoryRoundTrip tests that history entries survive storage
func (suite *CadetRepositoryTestSuite) TestYearlyHistoryRoundTrip() {
	year := suite.createYear()
	cadet := suite.factories.Cadet.WithSchoolYear(year.ID)
	cadet.YearlyHistory = models.HistoryEntries{
		{
			SchoolYearID:        year.ID,
			SchoolYearName:      "2024-2025",
			Grade:               9,
			ASLevel:             1,
			Flight:              "Alpha",
			Semester1Activities: models.StringList{"Color Guard"},
			Semester2Activities: models.StringList{},
		},
	}
	suite.Require().NoError(suite.repo.Create(cadet))

	retrieved, err := suite.repo.GetByID(cadet.ID)

	suite.NoError(err)
	suite.Len(retrieved.YearlyHistory, 1)
	suite.Equal("2024-2025", retrieved.YearlyHistory[0].SchoolYearName)
	suite.Equal(models.StringList{"Color Guard"}, retrieved.YearlyHistory[0].Semester1Activities)
}

// TestNonExistentCadet tests operations on a missing cadet ID
func (suite *CadetRepositoryTestSuite) TestNonExistentCadet() {
	cadet, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(cadet)
}

// Run the test suite
func TestCadetRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CadetRepositoryTestSuite))
}
