package employee

import "context"

// EmployeeService covers the HR actions that payroll and leave depend on.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	UpdateBaseSalary(ctx context.Context, req UpdateBaseSalaryRequest) (EmployeeResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (EmployeeResponse, error)
}
