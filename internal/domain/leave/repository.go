package leave

import "context"

type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	// GetForUpdate locks the balance row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, employeeID, leaveType string, year int) (LeaveBalance, error)
	// Update writes the counters when the stored version still equals balance.Version,
	// and returns the row with its new version. A stale version yields ErrBalanceModified.
	Update(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]LeaveBalance, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	// UpdateDecision persists the decision of a request that is still pending.
	UpdateDecision(ctx context.Context, request LeaveRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
}
