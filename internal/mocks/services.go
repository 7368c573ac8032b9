package mocks

import (
	"context"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/stretchr/testify/mock"
)

// ========== EMPLOYEE ==========

type EmployeeService struct {
	mock.Mock
}

func (m *EmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(employee.ListEmployeeResponse), args.Error(1)
}

func (m *EmployeeService) UpdateBaseSalary(ctx context.Context, req employee.UpdateBaseSalaryRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

// ========== PAYROLL ==========

type PayrollService struct {
	mock.Mock
}

func (m *PayrollService) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PeriodResponse), args.Error(1)
}

func (m *PayrollService) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PeriodResponse), args.Error(1)
}

func (m *PayrollService) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(payroll.ListPeriodResponse), args.Error(1)
}

func (m *PayrollService) ListEntries(ctx context.Context, periodID string) ([]payroll.EntryResponse, error) {
	args := m.Called(ctx, periodID)
	return args.Get(0).([]payroll.EntryResponse), args.Error(1)
}

func (m *PayrollService) ProcessPeriod(ctx context.Context, req payroll.ProcessPeriodRequest) (payroll.PeriodResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PeriodResponse), args.Error(1)
}

func (m *PayrollService) PreviewStatutory(ctx context.Context, req payroll.PreviewStatutoryRequest) (payroll.StatutoryResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.StatutoryResponse), args.Error(1)
}

// ========== LEAVE ==========

type LeaveService struct {
	mock.Mock
}

func (m *LeaveService) CreateBalance(ctx context.Context, req leave.CreateLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveBalanceResponse), args.Error(1)
}

func (m *LeaveService) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	args := m.Called(ctx, employeeID, year)
	return args.Get(0).([]leave.LeaveBalanceResponse), args.Error(1)
}

func (m *LeaveService) AuditBalances(ctx context.Context, year int) ([]leave.LeaveBalanceResponse, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]leave.LeaveBalanceResponse), args.Error(1)
}

func (m *LeaveService) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) ApproveRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) RejectRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) DeleteRequest(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LeaveService) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequestResponse), args.Error(1)
}

func (m *LeaveService) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(leave.ListLeaveRequestResponse), args.Error(1)
}

// ========== CLAIM ==========

type ClaimService struct {
	mock.Mock
}

func (m *ClaimService) CreateClaim(ctx context.Context, req claim.CreateClaimRequest) (claim.ClaimResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) SubmitClaim(ctx context.Context, id string) (claim.ClaimResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) ApproveClaim(ctx context.Context, req claim.DecideClaimRequest) (claim.ClaimResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) RejectClaim(ctx context.Context, req claim.DecideClaimRequest) (claim.ClaimResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) PayClaim(ctx context.Context, req claim.PayClaimRequest) (claim.ClaimResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) GetClaim(ctx context.Context, id string) (claim.ClaimResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(claim.ClaimResponse), args.Error(1)
}

func (m *ClaimService) ListClaims(ctx context.Context, filter claim.ClaimFilter) (claim.ListClaimResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(claim.ListClaimResponse), args.Error(1)
}

// ========== DASHBOARD ==========

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) GetDashboard(ctx context.Context, year int) (*dashboard.DashboardResponse, error) {
	args := m.Called(ctx, year)
	resp, _ := args.Get(0).(*dashboard.DashboardResponse)
	return resp, args.Error(1)
}
