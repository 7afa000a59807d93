package models

// SchoolYear represents one academic year of the corps. At most one school
// year is active system-wide.
type SchoolYear struct {
	BaseModel
	Name      string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	StartYear int    `json:"start_year" gorm:"not null"`
	EndYear   int    `json:"end_year" gorm:"not null"`
	IsActive  bool   `json:"is_active" gorm:"default:false;index"`

	// Relationships
	Cadets          []Cadet          `json:"cadets,omitempty" gorm:"foreignKey:SchoolYearID;constraint:OnDelete:CASCADE"`
	ChainOfCommands []ChainOfCommand `json:"chain_of_commands,omitempty" gorm:"foreignKey:SchoolYearID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SchoolYear
func (SchoolYear) TableName() string {
	return "school_years"
}
