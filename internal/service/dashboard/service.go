package dashboard

import (
	"context"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		now:                 time.Now,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines,
// one query per section.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, year int) (*dashboard.DashboardResponse, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	since := now.AddDate(0, 0, -30)

	var (
		employees dashboard.EmployeeSummaryResponse
		payroll   dashboard.PayrollSummaryResponse
		leave     dashboard.LeaveSummaryResponse
		claims    dashboard.ClaimSummaryResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee Summary
	g.Go(func() error {
		stats, err := s.GetEmployeeSummary(gCtx, since)
		if err != nil {
			return err
		}
		employees = dashboard.EmployeeSummaryResponse{
			TotalEmployee:    stats.Total,
			NewEmployee:      stats.New,
			ActiveEmployee:   stats.Active,
			ResignedEmployee: stats.Resigned,
		}
		return nil
	})

	// 2. Payroll periods of the year
	g.Go(func() error {
		stats, err := s.GetPayrollSummary(gCtx, year)
		if err != nil {
			return err
		}
		payroll = dashboard.PayrollSummaryResponse{
			OpenPeriods:      stats.OpenPeriods,
			CompletedPeriods: stats.CompletedPeriods,
			TotalGrossPay:    stats.TotalGrossPay,
			TotalNetPay:      stats.TotalNetPay,
			TotalEmployer:    stats.TotalEmployer,
		}
		return nil
	})

	// 3. Leave requests and balances
	g.Go(func() error {
		stats, err := s.GetLeaveSummary(gCtx, year)
		if err != nil {
			return err
		}
		leave = dashboard.LeaveSummaryResponse{
			PendingRequests:  stats.PendingRequests,
			ApprovedRequests: stats.ApprovedRequests,
			RejectedRequests: stats.RejectedRequests,
			DaysTaken:        stats.DaysTaken,
			DaysPending:      stats.DaysPending,
			DaysAvailable:    stats.DaysAvailable,
		}
		return nil
	})

	// 4. Claims by status
	g.Go(func() error {
		stats, err := s.GetClaimSummary(gCtx, year)
		if err != nil {
			return err
		}
		claims = dashboard.ClaimSummaryResponse{
			Draft:             stats.Draft,
			PendingApproval:   stats.PendingApproval,
			Approved:          stats.Approved,
			Rejected:          stats.Rejected,
			Paid:              stats.Paid,
			OutstandingAmount: stats.OutstandingAmount,
			PaidAmount:        stats.PaidAmount,
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.DashboardResponse{
		Year:        year,
		Employees:   employees,
		Payroll:     payroll,
		Leave:       leave,
		Claims:      claims,
		GeneratedAt: now,
	}, nil
}
