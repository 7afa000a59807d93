package models

import (
	"github.com/google/uuid"
)

// ChainOfCommand is one organizational chart within a school year. It owns
// its positions; the cadets referenced by position assignments are weak
// references, deleting a chart never deletes cadets.
type ChainOfCommand struct {
	BaseModel
	SchoolYearID uuid.UUID `json:"school_year_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description  string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Positions []Position `json:"positions,omitempty" gorm:"foreignKey:ChainOfCommandID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ChainOfCommand
func (ChainOfCommand) TableName() string {
	return "chain_of_commands"
}
