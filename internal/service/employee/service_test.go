package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/mocks"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	salary := decimal.RequireFromString("4200.00")

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e employee.Employee) bool {
		return e.EmployeeCode == "EMP-001" &&
			e.EmploymentStatus == employee.EmploymentStatusActive &&
			e.HireDate.Format("2006-01-02") == "2024-01-15"
	})).Return(employee.Employee{ID: "emp-1", EmployeeCode: "EMP-001", BaseSalary: &salary, EmploymentStatus: employee.EmploymentStatusActive}, nil)

	// Act
	result, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode: "EMP-001",
		FullName:     "Nur Aisyah",
		BaseSalary:   &salary,
		HireDate:     "2024-01-15",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "emp-1", result.ID)
	assert.Equal(t, "active", result.EmploymentStatus)
	repo.AssertExpectations(t)
}

func TestEmployeeService_CreateEmployee_NegativeSalary(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	salary := decimal.RequireFromString("-1")

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode: "EMP-001",
		FullName:     "Nur Aisyah",
		BaseSalary:   &salary,
		HireDate:     "2024-01-15",
	})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_CreateEmployee_DuplicateCode(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(employee.Employee{}, employee.ErrEmployeeCodeExists)

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeCode: "EMP-001",
		FullName:     "Nur Aisyah",
		HireDate:     "2024-01-15",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	repo.On("GetByID", mock.Anything, "missing").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := svc.GetEmployee(context.Background(), "missing")

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestEmployeeService_UpdateBaseSalary(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	salary := decimal.RequireFromString("5100.00")
	repo.On("UpdateBaseSalary", mock.Anything, "emp-1", salary).Return(employee.Employee{ID: "emp-1", BaseSalary: &salary}, nil)

	result, err := svc.UpdateBaseSalary(context.Background(), employee.UpdateBaseSalaryRequest{ID: "emp-1", BaseSalary: salary})

	require.NoError(t, err)
	require.NotNil(t, result.BaseSalary)
	assert.True(t, result.BaseSalary.Equal(salary))
}

func TestEmployeeService_UpdateStatus_Invalid(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)

	_, err := svc.UpdateStatus(context.Background(), employee.UpdateStatusRequest{ID: "emp-1", EmploymentStatus: "retired"})

	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmployeeService_ListEmployees(t *testing.T) {
	repo := &mocks.EmployeeRepository{}
	svc := NewEmployeeService(repo)
	status := "active"
	repo.On("List", mock.Anything, employee.EmployeeFilter{Status: &status, Page: 1, Limit: 20}).
		Return([]employee.Employee{{ID: "emp-1"}, {ID: "emp-2"}}, int64(2), nil)

	result, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Employees, 2)
}
