package leave

import "context"

type LeaveService interface {
	// Balance
	CreateBalance(ctx context.Context, req CreateLeaveBalanceRequest) (LeaveBalanceResponse, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalanceResponse, error)
	// AuditBalances returns the balances of year that break the conservation invariant.
	AuditBalances(ctx context.Context, year int) ([]LeaveBalanceResponse, error)

	// Request
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	ApproveRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
	RejectRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
	DeleteRequest(ctx context.Context, id string) error
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
}
