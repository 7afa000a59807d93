package repository

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CadetRepository handles database operations for cadets
type CadetRepository struct {
	db *gorm.DB
}

// NewCadetRepository creates a new cadet repository
func NewCadetRepository(db *gorm.DB) *CadetRepository {
	return &CadetRepository{db: db}
}

// Create creates a new cadet
func (r *CadetRepository) Create(cadet *models.Cadet) error {
	return r.db.Create(cadet).Error
}

// CreateBatch creates a batch of cadets in one transaction
func (r *CadetRepository) CreateBatch(cadets []models.Cadet) error {
	if len(cadets) == 0 {
		return nil
	}
	return r.db.Create(&cadets).Error
}

// GetByID retrieves a cadet by ID
func (r *CadetRepository) GetByID(id uuid.UUID) (*models.Cadet, error) {
	var cadet models.Cadet
	err := r.db.First(&cadet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cadet, nil
}

// GetBySchoolYearID retrieves cadets for a school year with pagination
func (r *CadetRepository) GetBySchoolYearID(schoolYearID uuid.UUID, limit, offset int) ([]models.Cadet, int64, error) {
	var cadets []models.Cadet
	var total int64

	if err := r.db.Model(&models.Cadet{}).Where("school_year_id = ?", schoolYearID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("school_year_id = ?", schoolYearID).
		Order("last_name, first_name").
		Limit(limit).Offset(offset).
		Find(&cadets).Error
	if err != nil {
		return nil, 0, err
	}

	return cadets, total, nil
}

// GetAllBySchoolYearID retrieves the full roster of a school year
func (r *CadetRepository) GetAllBySchoolYearID(schoolYearID uuid.UUID) ([]models.Cadet, error) {
	var cadets []models.Cadet
	err := r.db.Where("school_year_id = ?", schoolYearID).
		Order("last_name, first_name").
		Find(&cadets).Error
	if err != nil {
		return nil, err
	}
	return cadets, nil
}

// Update updates a cadet
func (r *CadetRepository) Update(cadet *models.Cadet) error {
	return r.db.Save(cadet).Error
}

// Delete deletes a cadet
func (r *CadetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Cadet{}, "id = ?", id).Error
}

// DeleteBySchoolYearID deletes all cadets belonging to a school year
func (r *CadetRepository) DeleteBySchoolYearID(schoolYearID uuid.UUID) error {
	return r.db.Delete(&models.Cadet{}, "school_year_id = ?", schoolYearID).Error
}
