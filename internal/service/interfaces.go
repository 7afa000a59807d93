package service

import (
	"github.com/google/uuid"
)

// SchoolYearServiceInterface defines the interface for school year operations
type SchoolYearServiceInterface interface {
	Create(req *CreateSchoolYearRequest) (*SchoolYearResponse, error)
	GetByID(id uuid.UUID) (*SchoolYearResponse, error)
	GetAll(page, pageSize int) (*SchoolYearListResponse, error)
	GetActive() (*SchoolYearResponse, error)
	Update(id uuid.UUID, req *UpdateSchoolYearRequest) (*SchoolYearResponse, error)
	SetActive(id uuid.UUID) (*SchoolYearResponse, error)
	Delete(id uuid.UUID) error
	Promote(req *PromoteRequest) (*PromoteResponse, error)
}

// CadetServiceInterface defines the interface for cadet operations
type CadetServiceInterface interface {
	Create(req *CreateCadetRequest) (*CadetResponse, error)
	GetByID(id uuid.UUID) (*CadetResponse, error)
	GetBySchoolYear(schoolYearID uuid.UUID, page, pageSize int) (*CadetListResponse, error)
	Update(id uuid.UUID, req *UpdateCadetRequest) (*CadetResponse, error)
	Delete(id uuid.UUID) error
}

// ChainOfCommandServiceInterface defines the interface for chart operations
type ChainOfCommandServiceInterface interface {
	Create(req *CreateChartRequest) (*ChartResponse, error)
	GetByID(id uuid.UUID) (*ChartResponse, error)
	GetBySchoolYear(schoolYearID uuid.UUID) ([]ChartResponse, error)
	Update(id uuid.UUID, req *UpdateChartRequest) (*ChartResponse, error)
	Delete(id uuid.UUID) error
	AddPosition(chartID uuid.UUID, req *PositionRequest) (*PositionResponse, error)
	UpdatePosition(chartID, positionID uuid.UUID, req *UpdatePositionRequest) (*PositionResponse, error)
	DeletePosition(chartID, positionID uuid.UUID) error
	AssignCadet(chartID, positionID uuid.UUID, req *AssignRequest) (*ChartResponse, error)
	UnassignCadet(chartID, positionID uuid.UUID, req *AssignRequest) (*ChartResponse, error)
	InstallTemplate(chartID uuid.UUID, req *ExpandTemplateRequest) (*ChartResponse, error)
}

// ActivityServiceInterface defines the interface for the activity catalog
type ActivityServiceInterface interface {
	GetCatalog() (*ActivityCatalogResponse, error)
	ReplaceCatalog(req *ReplaceActivitiesRequest) (*ActivityCatalogResponse, error)
}

// UserServiceInterface defines the interface for user profile operations
type UserServiceInterface interface {
	GetOrCreate(subject string, attrs ProfileAttributes) (*UserProfileResponse, error)
	GetBySubject(subject string) (*UserProfileResponse, error)
}

// TransferServiceInterface defines the interface for export/import
type TransferServiceInterface interface {
	Export() (*ExportDocument, error)
	Import(payload []byte) (*ExportDocument, error)
}
