package mocks

import (
	"context"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/stretchr/testify/mock"
)

type DashboardRepository struct {
	mock.Mock
}

func (m *DashboardRepository) GetEmployeeSummary(ctx context.Context, since time.Time) (*dashboard.EmployeeSummaryStats, error) {
	args := m.Called(ctx, since)
	stats, _ := args.Get(0).(*dashboard.EmployeeSummaryStats)
	return stats, args.Error(1)
}

func (m *DashboardRepository) GetPayrollSummary(ctx context.Context, year int) (*dashboard.PayrollSummaryStats, error) {
	args := m.Called(ctx, year)
	stats, _ := args.Get(0).(*dashboard.PayrollSummaryStats)
	return stats, args.Error(1)
}

func (m *DashboardRepository) GetLeaveSummary(ctx context.Context, year int) (*dashboard.LeaveSummaryStats, error) {
	args := m.Called(ctx, year)
	stats, _ := args.Get(0).(*dashboard.LeaveSummaryStats)
	return stats, args.Error(1)
}

func (m *DashboardRepository) GetClaimSummary(ctx context.Context, year int) (*dashboard.ClaimSummaryStats, error) {
	args := m.Called(ctx, year)
	stats, _ := args.Get(0).(*dashboard.ClaimSummaryStats)
	return stats, args.Error(1)
}
