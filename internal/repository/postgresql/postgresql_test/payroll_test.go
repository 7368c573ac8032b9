package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollRepository(t *testing.T) {
	truncateAllTables(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(testDB)
	emp := createTestEmployee(t, "E-300", 5000)

	period, err := repo.CreatePeriod(ctx, payroll.PayrollPeriod{Month: 6, Year: 2025, Status: payroll.PeriodStatusOpen})
	require.NoError(t, err)

	t.Run("one period per month", func(t *testing.T) {
		_, err := repo.CreatePeriod(ctx, payroll.PayrollPeriod{Month: 6, Year: 2025, Status: payroll.PeriodStatusOpen})
		assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyExists)
	})

	entry := payroll.PayrollEntry{PeriodID: period.ID, EmployeeID: emp.ID}
	entry.BasicSalary = decimal.NewFromInt(5000)
	entry.GrossPay = decimal.NewFromInt(5000)
	entry.NetPay = decimal.NewFromInt(4000)

	_, err = repo.CreateEntry(ctx, entry)
	require.NoError(t, err)

	t.Run("one entry per employee", func(t *testing.T) {
		_, err := repo.CreateEntry(ctx, entry)
		assert.ErrorIs(t, err, payroll.ErrEntryAlreadyExists)
	})

	t.Run("entries join employee", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, period.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].EmployeeCode)
		assert.Equal(t, "E-300", *entries[0].EmployeeCode)
	})

	t.Run("complete only once", func(t *testing.T) {
		by := "hr-1"
		at := time.Now()
		period.Status = payroll.PeriodStatusCompleted
		period.ProcessedBy = &by
		period.ProcessedAt = &at

		require.NoError(t, repo.CompletePeriod(ctx, period))
		assert.ErrorIs(t, repo.CompletePeriod(ctx, period), payroll.ErrPeriodAlreadyCompleted)

		got, err := repo.GetPeriodByID(ctx, period.ID)
		require.NoError(t, err)
		assert.Equal(t, payroll.PeriodStatusCompleted, got.Status)

		open := string(payroll.PeriodStatusOpen)
		_, n, err := repo.ListPeriods(ctx, payroll.PeriodFilter{Status: &open, Page: 1, Limit: 20})
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
