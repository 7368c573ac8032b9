package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/backoffice-go/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	repo := &mocks.DashboardRepository{}
	svc := NewDashboardService(repo).(*DashboardServiceImpl)
	now := time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	repo.On("GetEmployeeSummary", mock.Anything, now.AddDate(0, 0, -30)).
		Return(&dashboard.EmployeeSummaryStats{Total: 12, New: 2, Active: 10, Resigned: 1}, nil)
	repo.On("GetPayrollSummary", mock.Anything, 2025).
		Return(&dashboard.PayrollSummaryStats{OpenPeriods: 1, CompletedPeriods: 7, TotalNetPay: decimal.RequireFromString("350000")}, nil)
	repo.On("GetLeaveSummary", mock.Anything, 2025).
		Return(&dashboard.LeaveSummaryStats{PendingRequests: 3, DaysPending: decimal.RequireFromString("5.5")}, nil)
	repo.On("GetClaimSummary", mock.Anything, 2025).
		Return(&dashboard.ClaimSummaryStats{Approved: 2, OutstandingAmount: decimal.RequireFromString("410.25")}, nil)

	// Act
	result, err := svc.GetDashboard(context.Background(), 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, int64(10), result.Employees.ActiveEmployee)
	assert.Equal(t, int64(7), result.Payroll.CompletedPeriods)
	assert.Equal(t, int64(3), result.Leave.PendingRequests)
	assert.Equal(t, "410.25", result.Claims.OutstandingAmount.String())
	assert.Equal(t, now, result.GeneratedAt)
	repo.AssertExpectations(t)
}

func TestDashboardService_GetDashboard_SectionFails(t *testing.T) {
	repo := &mocks.DashboardRepository{}
	svc := NewDashboardService(repo)

	repo.On("GetEmployeeSummary", mock.Anything, mock.Anything).Return(&dashboard.EmployeeSummaryStats{}, nil)
	repo.On("GetPayrollSummary", mock.Anything, 2024).Return(&dashboard.PayrollSummaryStats{}, nil)
	repo.On("GetLeaveSummary", mock.Anything, 2024).Return(nil, errors.New("db down"))
	repo.On("GetClaimSummary", mock.Anything, 2024).Return(&dashboard.ClaimSummaryStats{}, nil)

	result, err := svc.GetDashboard(context.Background(), 2024)

	assert.Error(t, err)
	assert.Nil(t, result)
}
