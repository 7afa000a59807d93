package models

// ActivityCatalog is the process-wide list of available activities. It is a
// singleton row: loaded with built-in defaults on first access and replaced
// wholesale by the configure operation. Removing an entry does not clean up
// cadet activity lists that already reference it.
type ActivityCatalog struct {
	BaseModel
	Activities StringList `json:"activities" gorm:"type:jsonb"`
}

// TableName returns the table name for ActivityCatalog
func (ActivityCatalog) TableName() string {
	return "activity_catalogs"
}

// DefaultActivities is the built-in catalog used to seed a fresh install.
var DefaultActivities = StringList{
	// Leadership & Military
	"Drill Team", "Honor Guard", "Color Guard", "Leadership Course",
	"Squadron Commander", "Flight Commander", "First Sergeant",

	// Academic & Competition
	"Academic Bowl", "CyberPatriot", "Drill Competition", "Inspection Team",

	// Community & Service
	"Community Service", "Veterans Day Ceremony", "Flag Detail",

	// Physical & Recreation
	"Physical Training", "Fitness Testing", "Outdoor Activities",

	// Career & Education
	"Career Exploration", "STEM Activities", "Aerospace Education",
}
