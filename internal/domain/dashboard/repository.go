package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeSummaryStats combines all employee summary counts in single query
type EmployeeSummaryStats struct {
	Total    int64
	New      int64 // hired since the given date
	Active   int64
	Resigned int64
}

// PayrollSummaryStats covers the periods of one year
type PayrollSummaryStats struct {
	OpenPeriods      int64
	CompletedPeriods int64
	TotalGrossPay    decimal.Decimal
	TotalNetPay      decimal.Decimal
	TotalEmployer    decimal.Decimal // EPF + SOCSO + EIS employer shares
}

// LeaveSummaryStats combines request counts and balance totals of one year
type LeaveSummaryStats struct {
	PendingRequests  int64
	ApprovedRequests int64
	RejectedRequests int64
	DaysTaken        decimal.Decimal
	DaysPending      decimal.Decimal
	DaysAvailable    decimal.Decimal
}

// ClaimSummaryStats holds claim counts per status and the approved amount awaiting payment
type ClaimSummaryStats struct {
	Draft             int64
	PendingApproval   int64
	Approved          int64
	Rejected          int64
	Paid              int64
	OutstandingAmount decimal.Decimal
	PaidAmount        decimal.Decimal
}

type DashboardRepository interface {
	GetEmployeeSummary(ctx context.Context, since time.Time) (*EmployeeSummaryStats, error)
	GetPayrollSummary(ctx context.Context, year int) (*PayrollSummaryStats, error)
	GetLeaveSummary(ctx context.Context, year int) (*LeaveSummaryStats, error)
	GetClaimSummary(ctx context.Context, year int) (*ClaimSummaryStats, error)
}
