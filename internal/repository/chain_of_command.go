package repository

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChainOfCommandRepository handles database operations for charts
type ChainOfCommandRepository struct {
	db *gorm.DB
}

// NewChainOfCommandRepository creates a new chart repository
func NewChainOfCommandRepository(db *gorm.DB) *ChainOfCommandRepository {
	return &ChainOfCommandRepository{db: db}
}

// Create creates a new chart
func (r *ChainOfCommandRepository) Create(chart *models.ChainOfCommand) error {
	return r.db.Create(chart).Error
}

// GetByID retrieves a chart by ID
func (r *ChainOfCommandRepository) GetByID(id uuid.UUID) (*models.ChainOfCommand, error) {
	var chart models.ChainOfCommand
	err := r.db.First(&chart, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetWithPositions retrieves a chart with its positions ordered by hierarchy level
func (r *ChainOfCommandRepository) GetWithPositions(id uuid.UUID) (*models.ChainOfCommand, error) {
	var chart models.ChainOfCommand
	err := r.db.Preload("Positions", func(db *gorm.DB) *gorm.DB {
		return db.Order("positions.level, positions.created_at")
	}).First(&chart, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetBySchoolYearID retrieves all charts for a school year
func (r *ChainOfCommandRepository) GetBySchoolYearID(schoolYearID uuid.UUID) ([]models.ChainOfCommand, error) {
	var charts []models.ChainOfCommand
	err := r.db.Where("school_year_id = ?", schoolYearID).
		Order("created_at").
		Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}

// Update updates a chart
func (r *ChainOfCommandRepository) Update(chart *models.ChainOfCommand) error {
	return r.db.Save(chart).Error
}

// Delete deletes a chart and its positions. Cadets referenced by position
// assignments are untouched.
func (r *ChainOfCommandRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Position{}, "chain_of_command_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChainOfCommand{}, "id = ?", id).Error
	})
}
