package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// StringList is a JSON-encoded list of strings stored in a jsonb column.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// Contains reports whether s is present in the list.
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}

// UUIDList is a JSON-encoded ordered list of UUIDs stored in a jsonb column.
type UUIDList []uuid.UUID

// Value implements driver.Valuer
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		l = UUIDList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = UUIDList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for UUIDList", value)
	}
}

// Contains reports whether id is present in the list.
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, item := range l {
		if item == id {
			return true
		}
	}
	return false
}

// Remove returns the list without id and whether anything was removed.
func (l UUIDList) Remove(id uuid.UUID) (UUIDList, bool) {
	out := make(UUIDList, 0, len(l))
	removed := false
	for _, item := range l {
		if item == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

// HistoryEntries is a JSON-encoded list of archived per-year snapshots.
type HistoryEntries []HistoryEntry

// HistoryEntry captures a cadet's standing at the moment a school year was
// archived by promotion.
type HistoryEntry struct {
	SchoolYearID        uuid.UUID  `json:"school_year_id"`
	SchoolYearName      string     `json:"school_year_name"`
	Grade               int        `json:"grade"`
	ASLevel             int        `json:"as_level"`
	Flight              string     `json:"flight"`
	Semester1Activities StringList `json:"semester1_activities"`
	Semester2Activities StringList `json:"semester2_activities"`
}

// Value implements driver.Valuer
func (h HistoryEntries) Value() (driver.Value, error) {
	if h == nil {
		h = HistoryEntries{}
	}
	return json.Marshal(h)
}

// Scan implements sql.Scanner
func (h *HistoryEntries) Scan(value interface{}) error {
	if value == nil {
		*h = HistoryEntries{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported type %T for HistoryEntries", value)
	}
}
