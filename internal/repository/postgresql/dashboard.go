package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeSummary returns total, new (since date), active, resigned in single query
func (r *dashboardRepositoryImpl) GetEmployeeSummary(ctx context.Context, since time.Time) (*dashboard.EmployeeSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN hire_date >= $1 THEN 1 ELSE 0 END), 0) as new_count,
			COALESCE(SUM(CASE WHEN employment_status = 'active' THEN 1 ELSE 0 END), 0) as active_count,
			COALESCE(SUM(CASE WHEN employment_status = 'resigned' THEN 1 ELSE 0 END), 0) as resigned_count
		FROM employees
	`

	var stats dashboard.EmployeeSummaryStats
	err := q.QueryRow(ctx, query, since).Scan(
		&stats.Total, &stats.New, &stats.Active, &stats.Resigned,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee summary: %w", err)
	}
	return &stats, nil
}

// GetPayrollSummary returns period counts and completed totals of a year in single query
func (r *dashboardRepositoryImpl) GetPayrollSummary(ctx context.Context, year int) (*dashboard.PayrollSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'open') as open_count,
			COUNT(*) FILTER (WHERE status = 'completed') as completed_count,
			COALESCE(SUM(total_gross_pay), 0) as gross,
			COALESCE(SUM(total_net_pay), 0) as net,
			COALESCE((
				SELECT SUM(pe.epf_employer + pe.socso_employer + pe.eis_employer)
				FROM payroll_entries pe
				JOIN payroll_periods pp ON pe.period_id = pp.id
				WHERE pp.period_year = $1
			), 0) as employer
		FROM payroll_periods
		WHERE period_year = $1
	`

	var stats dashboard.PayrollSummaryStats
	err := q.QueryRow(ctx, query, year).Scan(
		&stats.OpenPeriods, &stats.CompletedPeriods,
		&stats.TotalGrossPay, &stats.TotalNetPay, &stats.TotalEmployer,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll summary: %w", err)
	}
	return &stats, nil
}

// GetLeaveSummary returns request counts and balance totals of a year in single query
func (r *dashboardRepositoryImpl) GetLeaveSummary(ctx context.Context, year int) (*dashboard.LeaveSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM leave_requests WHERE balance_year = $1 AND status = 'pending'),
			(SELECT COUNT(*) FROM leave_requests WHERE balance_year = $1 AND status = 'approved'),
			(SELECT COUNT(*) FROM leave_requests WHERE balance_year = $1 AND status = 'rejected'),
			COALESCE(SUM(taken), 0),
			COALESCE(SUM(pending), 0),
			COALESCE(SUM(available), 0)
		FROM leave_balances
		WHERE year = $1
	`

	var stats dashboard.LeaveSummaryStats
	err := q.QueryRow(ctx, query, year).Scan(
		&stats.PendingRequests, &stats.ApprovedRequests, &stats.RejectedRequests,
		&stats.DaysTaken, &stats.DaysPending, &stats.DaysAvailable,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave summary: %w", err)
	}
	return &stats, nil
}

// GetClaimSummary returns claim counts per status and amounts of a year in single query
func (r *dashboardRepositoryImpl) GetClaimSummary(ctx context.Context, year int) (*dashboard.ClaimSummaryStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'pending_approval'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'approved'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'paid'), 0)
		FROM claims
		WHERE EXTRACT(YEAR FROM claim_date) = $1
	`

	var stats dashboard.ClaimSummaryStats
	err := q.QueryRow(ctx, query, year).Scan(
		&stats.Draft, &stats.PendingApproval, &stats.Approved, &stats.Rejected, &stats.Paid,
		&stats.OutstandingAmount, &stats.PaidAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get claim summary: %w", err)
	}
	return &stats, nil
}
