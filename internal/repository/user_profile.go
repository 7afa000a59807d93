package repository

import (
	"cadet-corps-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserProfileRepository handles database operations for user profiles
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// GetBySubject retrieves a profile by the identity provider subject id
func (r *UserProfileRepository) GetBySubject(subject string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.First(&profile, "subject = ?", subject).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create creates a new profile
func (r *UserProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

// Update updates a profile
func (r *UserProfileRepository) Update(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
