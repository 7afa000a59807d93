package repository

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolYearRepository handles database operations for school years
type SchoolYearRepository struct {
	db *gorm.DB
}

// NewSchoolYearRepository creates a new school year repository
func NewSchoolYearRepository(db *gorm.DB) *SchoolYearRepository {
	return &SchoolYearRepository{db: db}
}

// Create creates a new school year
func (r *SchoolYearRepository) Create(year *models.SchoolYear) error {
	return r.db.Create(year).Error
}

// GetByID retrieves a school year by ID
func (r *SchoolYearRepository) GetByID(id uuid.UUID) (*models.SchoolYear, error) {
	var year models.SchoolYear
	err := r.db.First(&year, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// GetByName retrieves a school year by its display name
func (r *SchoolYearRepository) GetByName(name string) (*models.SchoolYear, error) {
	var year models.SchoolYear
	err := r.db.First(&year, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// GetAll retrieves all school years with pagination, newest first
func (r *SchoolYearRepository) GetAll(limit, offset int) ([]models.SchoolYear, int64, error) {
	var years []models.SchoolYear
	var total int64

	if err := r.db.Model(&models.SchoolYear{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&years).Error
	if err != nil {
		return nil, 0, err
	}

	return years, total, nil
}

// GetActive retrieves the single active school year
func (r *SchoolYearRepository) GetActive() (*models.SchoolYear, error) {
	var year models.SchoolYear
	err := r.db.First(&year, "is_active = ?", true).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// SetActive atomically clears the previous active year and marks the given
// one active. At most one school year is active at any time.
func (r *SchoolYearRepository) SetActive(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var year models.SchoolYear
		if err := tx.First(&year, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SchoolYear{}).
			Where("is_active = ? AND id <> ?", true, id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.SchoolYear{}).
			Where("id = ?", id).
			Update("is_active", true).Error
	})
}

// Update updates a school year
func (r *SchoolYearRepository) Update(year *models.SchoolYear) error {
	return r.db.Save(year).Error
}

// Delete deletes a school year along with its owned cadets and charts
func (r *SchoolYearRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var charts []models.ChainOfCommand
		if err := tx.Find(&charts, "school_year_id = ?", id).Error; err != nil {
			return err
		}
		for _, chart := range charts {
			if err := tx.Delete(&models.Position{}, "chain_of_command_id = ?", chart.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.ChainOfCommand{}, "school_year_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Cadet{}, "school_year_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SchoolYear{}, "id = ?", id).Error
	})
}

// GetWithCadets retrieves a school year with its cadet roster
func (r *SchoolYearRepository) GetWithCadets(id uuid.UUID) (*models.SchoolYear, error) {
	var year models.SchoolYear
	err := r.db.Preload("Cadets").First(&year, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// GetGraph retrieves the entire entity graph: all years with nested cadets,
// charts and positions. Used by the export operation.
func (r *SchoolYearRepository) GetGraph() ([]models.SchoolYear, error) {
	var years []models.SchoolYear
	err := r.db.
		Preload("Cadets").
		Preload("ChainOfCommands").
		Preload("ChainOfCommands.Positions").
		Order("created_at DESC").
		Find(&years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// ReplaceGraph replaces the entire entity graph in a single transaction.
// Used by the import operation; either everything is installed or nothing.
func (r *SchoolYearRepository) ReplaceGraph(years []models.SchoolYear) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{
			&models.Position{},
			&models.ChainOfCommand{},
			&models.Cadet{},
			&models.SchoolYear{},
		} {
			if err := tx.Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}
		for i := range years {
			if err := tx.Create(&years[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
