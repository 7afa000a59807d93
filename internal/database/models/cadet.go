package models

import (
	"github.com/google/uuid"
)

// Cadet represents a cadet enrolled in one school year. A cadet belongs to
// exactly one school year; promotion creates a fresh record in the incoming
// year rather than moving this one.
type Cadet struct {
	BaseModel
	SchoolYearID uuid.UUID `json:"school_year_id" gorm:"type:uuid;not null;index" validate:"required"`
	FirstName    string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Rank         string    `json:"rank" gorm:"size:100"`
	Grade        int       `json:"grade" gorm:"not null;default:9"`
	ASLevel      int       `json:"as_level" gorm:"not null;default:1"`
	Flight       string    `json:"flight" gorm:"size:50"`
	Email        string    `json:"email" gorm:"size:255"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:20"`
	Notes        string    `json:"notes" gorm:"size:1000"`

	Semester1Activities StringList     `json:"semester1_activities" gorm:"type:jsonb"`
	Semester2Activities StringList     `json:"semester2_activities" gorm:"type:jsonb"`
	YearlyHistory       HistoryEntries `json:"yearly_history" gorm:"type:jsonb"`
}

// TableName returns the table name for Cadet
func (Cadet) TableName() string {
	return "cadets"
}

// FullName returns the cadet's display name.
func (c *Cadet) FullName() string {
	return c.FirstName + " " + c.LastName
}
