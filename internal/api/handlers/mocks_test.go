package handlers

import (
	"cadet-corps-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock implementations of the service interfaces for handler tests.

type MockSchoolYearService struct {
	mock.Mock
}

func (m *MockSchoolYearService) Create(req *service.CreateSchoolYearRequest) (*service.SchoolYearResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*service.SchoolYearResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) GetByID(id uuid.UUID) (*service.SchoolYearResponse, error) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*service.SchoolYearResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) GetAll(page, pageSize int) (*service.SchoolYearListResponse, error) {
	args := m.Called(page, pageSize)
	resp, _ := args.Get(0).(*service.SchoolYearListResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) GetActive() (*service.SchoolYearResponse, error) {
	args := m.Called()
	resp, _ := args.Get(0).(*service.SchoolYearResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) Update(id uuid.UUID, req *service.UpdateSchoolYearRequest) (*service.SchoolYearResponse, error) {
	args := m.Called(id, req)
	resp, _ := args.Get(0).(*service.SchoolYearResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) SetActive(id uuid.UUID) (*service.SchoolYearResponse, error) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*service.SchoolYearResponse)
	return resp, args.Error(1)
}

func (m *MockSchoolYearService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSchoolYearService) Promote(req *service.PromoteRequest) (*service.PromoteResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*service.PromoteResponse)
	return resp, args.Error(1)
}

type MockChainOfCommandService struct {
	mock.Mock
}

func (m *MockChainOfCommandService) Create(req *service.CreateChartRequest) (*service.ChartResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) GetByID(id uuid.UUID) (*service.ChartResponse, error) {
	args := m.Called(id)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) GetBySchoolYear(schoolYearID uuid.UUID) ([]service.ChartResponse, error) {
	args := m.Called(schoolYearID)
	resp, _ := args.Get(0).([]service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) Update(id uuid.UUID, req *service.UpdateChartRequest) (*service.ChartResponse, error) {
	args := m.Called(id, req)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockChainOfCommandService) AddPosition(chartID uuid.UUID, req *service.PositionRequest) (*service.PositionResponse, error) {
	args := m.Called(chartID, req)
	resp, _ := args.Get(0).(*service.PositionResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) UpdatePosition(chartID, positionID uuid.UUID, req *service.UpdatePositionRequest) (*service.PositionResponse, error) {
	args := m.Called(chartID, positionID, req)
	resp, _ := args.Get(0).(*service.PositionResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) DeletePosition(chartID, positionID uuid.UUID) error {
	args := m.Called(chartID, positionID)
	return args.Error(0)
}

func (m *MockChainOfCommandService) AssignCadet(chartID, positionID uuid.UUID, req *service.AssignRequest) (*service.ChartResponse, error) {
	args := m.Called(chartID, positionID, req)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) UnassignCadet(chartID, positionID uuid.UUID, req *service.AssignRequest) (*service.ChartResponse, error) {
	args := m.Called(chartID, positionID, req)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

func (m *MockChainOfCommandService) InstallTemplate(chartID uuid.UUID, req *service.ExpandTemplateRequest) (*service.ChartResponse, error) {
	args := m.Called(chartID, req)
	resp, _ := args.Get(0).(*service.ChartResponse)
	return resp, args.Error(1)
}

type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Export() (*service.ExportDocument, error) {
	args := m.Called()
	doc, _ := args.Get(0).(*service.ExportDocument)
	return doc, args.Error(1)
}

func (m *MockTransferService) Import(payload []byte) (*service.ExportDocument, error) {
	args := m.Called(payload)
	doc, _ := args.Get(0).(*service.ExportDocument)
	return doc, args.Error(1)
}
