package payroll

import "context"

type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) (ListPeriodResponse, error)
	ListEntries(ctx context.Context, periodID string) ([]EntryResponse, error)

	// ProcessPeriod computes one entry per active employee and completes the period.
	ProcessPeriod(ctx context.Context, req ProcessPeriodRequest) (PeriodResponse, error)

	// PreviewStatutory runs the statutory calculation without persisting anything.
	PreviewStatutory(ctx context.Context, req PreviewStatutoryRequest) (StatutoryResponse, error)
}
