package models

// Grade bounds for high-school cadets.
const (
	MinGrade = 9
	MaxGrade = 12
)

// Aerospace Science progression bounds.
const (
	MinASLevel = 1
	MaxASLevel = 4
)

// CadetRanks is the AFJROTC cadet rank ladder, junior to senior.
var CadetRanks = []string{
	"Cadet Airman Basic",
	"Cadet Airman",
	"Cadet Airman First Class",
	"Cadet Senior Airman",
	"Cadet Staff Sergeant",
	"Cadet Technical Sergeant",
	"Cadet Master Sergeant",
	"Cadet First Sergeant",
	"Cadet Chief Master Sergeant",
	"Cadet Second Lieutenant",
	"Cadet First Lieutenant",
	"Cadet Captain",
	"Cadet Major",
	"Cadet Lieutenant Colonel",
	"Cadet Colonel",
}

// DefaultRank is the rank assigned to a new cadet when none is given.
func DefaultRank() string {
	return CadetRanks[0]
}

// NormalizeGrade clamps out-of-range grades to the entry grade.
func NormalizeGrade(grade int) int {
	if grade < MinGrade || grade > MaxGrade {
		return MinGrade
	}
	return grade
}

// NormalizeASLevel clamps out-of-range AS levels to the entry level.
func NormalizeASLevel(level int) int {
	if level < MinASLevel || level > MaxASLevel {
		return MinASLevel
	}
	return level
}
