package postgresql_test

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository(t *testing.T) {
	truncateAllTables(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	first := createTestEmployee(t, "E-001", 5000)
	second := createTestEmployee(t, "E-002", 3000)

	t.Run("duplicate code", func(t *testing.T) {
		_, err := repo.Create(ctx, employee.Employee{
			EmployeeCode:     "E-001",
			FullName:         "Someone Else",
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         first.HireDate,
		})
		assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	})

	t.Run("update salary", func(t *testing.T) {
		updated, err := repo.UpdateBaseSalary(ctx, first.ID, decimal.NewFromInt(5500))
		require.NoError(t, err)
		assert.True(t, updated.Salary().Equal(decimal.NewFromInt(5500)))
	})

	t.Run("resigned employees are not active", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, second.ID, employee.EmploymentStatusResigned)
		require.NoError(t, err)

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, first.ID, active[0].ID)

		count, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}
