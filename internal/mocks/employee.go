package mocks

import (
	"context"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]employee.Employee), args.Get(1).(int64), args.Error(2)
}

func (m *EmployeeRepository) UpdateBaseSalary(ctx context.Context, id string, salary decimal.Decimal) (employee.Employee, error) {
	args := m.Called(ctx, id, salary)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) UpdateStatus(ctx context.Context, id string, status employee.EmploymentStatus) (employee.Employee, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
