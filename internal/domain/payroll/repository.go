package payroll

import "context"

// PayrollRepository defines data access methods for payroll periods and entries.
type PayrollRepository interface {
	// Periods
	CreatePeriod(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetPeriodByID(ctx context.Context, id string) (PayrollPeriod, error)
	// GetPeriodForUpdate locks the period row until the surrounding transaction ends.
	GetPeriodForUpdate(ctx context.Context, id string) (PayrollPeriod, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) ([]PayrollPeriod, int64, error)
	CompletePeriod(ctx context.Context, period PayrollPeriod) error

	// Entries
	CreateEntry(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)
	ListEntries(ctx context.Context, periodID string) ([]PayrollEntry, error)
}
