package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if validator.IsEmpty(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "id", Message: "is required"}}
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.ToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		BaseSalary:       req.BaseSalary,
		EmploymentStatus: employee.EmploymentStatusActive,
		HireDate:         hireDate,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "employee_id", created.ID, "employee_code", created.EmployeeCode)
	return employee.ToResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()
	if filter.Status != nil && !employee.EmploymentStatus(*filter.Status).IsValid() {
		return employee.ListEmployeeResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be one of active, on_leave, resigned, terminated"},
		}
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateBaseSalary implements employee.EmployeeService. The new salary is
// picked up by the next payroll run; completed periods keep their entries.
func (s *EmployeeServiceImpl) UpdateBaseSalary(ctx context.Context, req employee.UpdateBaseSalaryRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.UpdateBaseSalary(ctx, req.ID, req.BaseSalary)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update base salary: %w", err)
	}

	slog.Info("Employee base salary updated", "employee_id", emp.ID, "base_salary", req.BaseSalary.String())
	return employee.ToResponse(emp), nil
}

// UpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.UpdateStatus(ctx, req.ID, employee.EmploymentStatus(req.EmploymentStatus))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employment status: %w", err)
	}

	slog.Info("Employee status updated", "employee_id", emp.ID, "status", emp.EmploymentStatus)
	return employee.ToResponse(emp), nil
}
