//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"cadet-corps-backend/internal/database/models"
	"cadet-corps-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserProfileCreateAndGetBySubject(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		repo := NewUserProfileRepository(s.DB)
		profile := testutils.NewFactorySet().UserProfile.Create()

		require.NoError(t, repo.Create(profile))

		retrieved, err := repo.GetBySubject(profile.Subject)
		require.NoError(t, err)
		assert.Equal(t, profile.Email, retrieved.Email)
		assert.Equal(t, models.UserRoleInstructor, retrieved.Role)
	})
}

func TestUserProfileGetBySubjectNotFound(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		repo := NewUserProfileRepository(s.DB)

		profile, err := repo.GetBySubject("sub-never-seen")

		assert.Equal(t, gorm.ErrRecordNotFound, err)
		assert.Nil(t, profile)
	})
}

func TestUserProfileUpdateRefreshesLastLogin(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		repo := NewUserProfileRepository(s.DB)
		profile := testutils.NewFactorySet().UserProfile.Create()
		require.NoError(t, repo.Create(profile))

		later := time.Now().Add(2 * time.Hour)
		profile.LastLogin = later
		profile.DisplayName = "Senior Instructor"
		require.NoError(t, repo.Update(profile))

		retrieved, err := repo.GetBySubject(profile.Subject)
		require.NoError(t, err)
		assert.Equal(t, "Senior Instructor", retrieved.DisplayName)
		assert.WithinDuration(t, later, retrieved.LastLogin, time.Second)
	})
}
