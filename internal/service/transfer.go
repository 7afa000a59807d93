package service

import (
	"encoding/json"
	"fmt"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/repository"
)

// TransferService handles whole-graph export and import
type TransferService struct {
	repo repository.SchoolYearRepositoryInterface
}

// NewTransferService creates a new transfer service
func NewTransferService(repo repository.SchoolYearRepositoryInterface) *TransferService {
	return &TransferService{repo: repo}
}

// ExportDocument is the on-disk shape of a full export: every school year
// with its nested cadets, charts and positions.
type ExportDocument struct {
	SchoolYears []models.SchoolYear `json:"school_years"`
}

// legacyCorps matches the historical export shape where school years were
// nested one level down inside a corps wrapper.
type legacyCorps struct {
	SchoolYears      []models.SchoolYear `json:"school_years"`
	SchoolYearsCamel []models.SchoolYear `json:"schoolYears"`
}

func (c legacyCorps) years() []models.SchoolYear {
	if len(c.SchoolYears) > 0 {
		return c.SchoolYears
	}
	return c.SchoolYearsCamel
}

// Export serializes the entire entity graph to a single JSON document
func (s *TransferService) Export() (*ExportDocument, error) {
	years, err := s.repo.GetGraph()
	if err != nil {
		return nil, fmt.Errorf("failed to load entity graph: %w", err)
	}
	return &ExportDocument{SchoolYears: years}, nil
}

// Import replaces the entire entity graph from a JSON document. It accepts
// the current schema, a bare top-level year array, or the legacy
// corps-nested wrapper (the first corps' school years are lifted to top
// level). A payload that fails to parse leaves existing state untouched.
func (s *TransferService) Import(payload []byte) (*ExportDocument, error) {
	years, err := decodeImport(payload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceGraph(years); err != nil {
		return nil, fmt.Errorf("failed to install imported graph: %w", err)
	}

	return &ExportDocument{SchoolYears: years}, nil
}

// decodeImport parses any of the accepted payload shapes into a year list.
func decodeImport(payload []byte) ([]models.SchoolYear, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, apperrors.ErrImportParse
	}

	// Current schema: {"school_years": [...]}
	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err == nil && doc.SchoolYears != nil {
		return doc.SchoolYears, nil
	}

	// Array payloads: either a bare year list or the legacy corps wrapper.
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperrors.ErrImportParse
	}
	if len(items) == 0 {
		return []models.SchoolYear{}, nil
	}

	var corps legacyCorps
	if err := json.Unmarshal(items[0], &corps); err == nil && corps.years() != nil {
		return corps.years(), nil
	}

	var years []models.SchoolYear
	if err := json.Unmarshal(raw, &years); err != nil {
		return nil, apperrors.ErrImportShape
	}
	return years, nil
}
