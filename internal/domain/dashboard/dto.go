package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	Year        int                     `json:"year"`
	Employees   EmployeeSummaryResponse `json:"employees"`
	Payroll     PayrollSummaryResponse  `json:"payroll"`
	Leave       LeaveSummaryResponse    `json:"leave"`
	Claims      ClaimSummaryResponse    `json:"claims"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// ========== EMPLOYEE SUMMARY ==========

type EmployeeSummaryResponse struct {
	TotalEmployee    int64 `json:"total_employee"`
	NewEmployee      int64 `json:"new_employee"` // hired within 30 days
	ActiveEmployee   int64 `json:"active_employee"`
	ResignedEmployee int64 `json:"resigned_employee"`
}

// ========== PAYROLL SUMMARY ==========

type PayrollSummaryResponse struct {
	OpenPeriods      int64           `json:"open_periods"`
	CompletedPeriods int64           `json:"completed_periods"`
	TotalGrossPay    decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay      decimal.Decimal `json:"total_net_pay"`
	TotalEmployer    decimal.Decimal `json:"total_employer_contribution"`
}

// ========== LEAVE SUMMARY ==========

type LeaveSummaryResponse struct {
	PendingRequests  int64           `json:"pending_requests"`
	ApprovedRequests int64           `json:"approved_requests"`
	RejectedRequests int64           `json:"rejected_requests"`
	DaysTaken        decimal.Decimal `json:"days_taken"`
	DaysPending      decimal.Decimal `json:"days_pending"`
	DaysAvailable    decimal.Decimal `json:"days_available"`
}

// ========== CLAIM SUMMARY ==========

type ClaimSummaryResponse struct {
	Draft             int64           `json:"draft"`
	PendingApproval   int64           `json:"pending_approval"`
	Approved          int64           `json:"approved"`
	Rejected          int64           `json:"rejected"`
	Paid              int64           `json:"paid"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"` // approved, not yet paid
	PaidAmount        decimal.Decimal `json:"paid_amount"`
}
