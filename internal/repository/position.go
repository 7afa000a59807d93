package repository

import (
	"cadet-corps-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for chart positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByChartID retrieves all positions of a chart ordered by hierarchy level
func (r *PositionRepository) GetByChartID(chartID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.Where("chain_of_command_id = ?", chartID).
		Order("level, created_at").
		Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

// Update updates a position
func (r *PositionRepository) Update(position *models.Position) error {
	return r.db.Save(position).Error
}

// UpdateBatch saves a set of positions in one transaction. Used by the
// assignment operation which can touch several positions at once.
func (r *PositionRepository) UpdateBatch(positions []models.Position) error {
	if len(positions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range positions {
			if err := tx.Save(&positions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a position. Its assignment set is discarded without
// reassigning occupants elsewhere.
func (r *PositionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Position{}, "id = ?", id).Error
}

// ReplaceForChart swaps the entire position set of a chart in one
// transaction. Either all new positions are installed or none.
func (r *PositionRepository) ReplaceForChart(chartID uuid.UUID, positions []models.Position) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Position{}, "chain_of_command_id = ?", chartID).Error; err != nil {
			return err
		}
		for i := range positions {
			positions[i].ChainOfCommandID = chartID
			if err := tx.Create(&positions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
