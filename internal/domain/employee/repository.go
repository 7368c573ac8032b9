package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListActive returns employees with status active ordered by id.
	ListActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	UpdateBaseSalary(ctx context.Context, id string, salary decimal.Decimal) (Employee, error)
	UpdateStatus(ctx context.Context, id string, status EmploymentStatus) (Employee, error)
	CountActive(ctx context.Context) (int64, error)
}
