package mocks

import (
	"context"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/stretchr/testify/mock"
)

type LeaveBalanceRepository struct {
	mock.Mock
}

func (m *LeaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	args := m.Called(ctx, balance)
	return args.Get(0).(leave.LeaveBalance), args.Error(1)
}

func (m *LeaveBalanceRepository) GetForUpdate(ctx context.Context, employeeID, leaveType string, year int) (leave.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, leaveType, year)
	return args.Get(0).(leave.LeaveBalance), args.Error(1)
}

func (m *LeaveBalanceRepository) Update(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	args := m.Called(ctx, balance)
	return args.Get(0).(leave.LeaveBalance), args.Error(1)
}

func (m *LeaveBalanceRepository) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	args := m.Called(ctx, employeeID, year)
	return args.Get(0).([]leave.LeaveBalance), args.Error(1)
}

func (m *LeaveBalanceRepository) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]leave.LeaveBalance), args.Error(1)
}

type LeaveRequestRepository struct {
	mock.Mock
}

func (m *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) GetForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) UpdateDecision(ctx context.Context, request leave.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *LeaveRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LeaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]leave.LeaveRequest), args.Get(1).(int64), args.Error(2)
}
