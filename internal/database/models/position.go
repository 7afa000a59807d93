package models

import (
	"github.com/google/uuid"
)

// Position is a slot in a chain-of-command chart. Assignment is
// capacity-bounded and multi-occupant; MaxCadets of 1 gives the classic
// single-occupant behavior. X/Y are render coordinates only.
type Position struct {
	BaseModel
	ChainOfCommandID uuid.UUID `json:"chain_of_command_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title            string    `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Rank             string    `json:"rank" gorm:"size:100"`
	Level            int       `json:"level" gorm:"not null;default:1"`
	X                int       `json:"x"`
	Y                int       `json:"y"`
	Notes            string    `json:"notes" gorm:"size:500"`
	MaxCadets        int       `json:"max_cadets" gorm:"not null;default:1"`

	AssignedCadets UUIDList `json:"assigned_cadets" gorm:"type:jsonb"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}

// AtCapacity reports whether the position cannot take another cadet.
func (p *Position) AtCapacity() bool {
	max := p.MaxCadets
	if max < 1 {
		max = 1
	}
	return len(p.AssignedCadets) >= max
}
