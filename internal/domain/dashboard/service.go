package dashboard

import "context"

type DashboardService interface {
	// GetDashboard returns the back-office summary of year; 0 means the current year.
	GetDashboard(ctx context.Context, year int) (*DashboardResponse, error)
}
