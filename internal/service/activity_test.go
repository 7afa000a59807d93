package service

import (
	"testing"
	"time"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogSeedsDefaults(t *testing.T) {
	repo := new(MockActivityCatalogRepository)
	svc := NewActivityService(repo, validator.New())

	repo.On("GetOrCreate").Return(&models.ActivityCatalog{
		BaseModel:  models.BaseModel{UpdatedAt: time.Now()},
		Activities: append(models.StringList{}, models.DefaultActivities...),
	}, nil)

	resp, err := svc.GetCatalog()

	require.NoError(t, err)
	assert.Equal(t, []string(models.DefaultActivities), resp.Activities)
}

func TestReplaceCatalogTrimsEntries(t *testing.T) {
	repo := new(MockActivityCatalogRepository)
	svc := NewActivityService(repo, validator.New())

	repo.On("Replace", models.StringList{"Drill Team", "Color Guard"}).Return(&models.ActivityCatalog{
		BaseModel:  models.BaseModel{UpdatedAt: time.Now()},
		Activities: models.StringList{"Drill Team", "Color Guard"},
	}, nil)

	resp, err := svc.ReplaceCatalog(&ReplaceActivitiesRequest{
		Activities: []string{" Drill Team ", "Color Guard"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Drill Team", "Color Guard"}, resp.Activities)
	repo.AssertExpectations(t)
}

func TestReplaceCatalogRejectsEmptyEntry(t *testing.T) {
	repo := new(MockActivityCatalogRepository)
	svc := NewActivityService(repo, validator.New())

	_, err := svc.ReplaceCatalog(&ReplaceActivitiesRequest{Activities: []string{"Drill Team", "   "}})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	repo.AssertNotCalled(t, "Replace")
}
