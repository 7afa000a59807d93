package repository

import (
	"errors"

	"cadet-corps-backend/internal/database/models"

	"gorm.io/gorm"
)

// ActivityCatalogRepository handles the singleton activity catalog row
type ActivityCatalogRepository struct {
	db *gorm.DB
}

// NewActivityCatalogRepository creates a new activity catalog repository
func NewActivityCatalogRepository(db *gorm.DB) *ActivityCatalogRepository {
	return &ActivityCatalogRepository{db: db}
}

// GetOrCreate returns the catalog, seeding it with the built-in default
// activity list on first access.
func (r *ActivityCatalogRepository) GetOrCreate() (*models.ActivityCatalog, error) {
	var catalog models.ActivityCatalog
	err := r.db.First(&catalog).Error
	if err == nil {
		return &catalog, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	catalog = models.ActivityCatalog{
		Activities: append(models.StringList{}, models.DefaultActivities...),
	}
	if err := r.db.Create(&catalog).Error; err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Replace overwrites the catalog wholesale. References already recorded on
// cadets are left untouched.
func (r *ActivityCatalogRepository) Replace(activities models.StringList) (*models.ActivityCatalog, error) {
	catalog, err := r.GetOrCreate()
	if err != nil {
		return nil, err
	}
	catalog.Activities = activities
	if err := r.db.Save(catalog).Error; err != nil {
		return nil, err
	}
	return catalog, nil
}
