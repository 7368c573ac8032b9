package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimRepository(t *testing.T) {
	truncateAllTables(t)
	ctx := context.Background()
	repo := postgresql.NewClaimRepository(testDB)
	emp := createTestEmployee(t, "E-200", 4000)

	t.Run("sequence is per prefix and year", func(t *testing.T) {
		first, err := repo.NextSequence(ctx, claim.NumberPrefix, 2025)
		require.NoError(t, err)
		second, err := repo.NextSequence(ctx, claim.NumberPrefix, 2025)
		require.NoError(t, err)
		other, err := repo.NextSequence(ctx, claim.NumberPrefix, 2026)
		require.NoError(t, err)

		assert.Equal(t, int64(1), first)
		assert.Equal(t, int64(2), second)
		assert.Equal(t, int64(1), other)
	})

	t.Run("rolled back draw is returned", func(t *testing.T) {
		tx := postgresql.NewTransactor(testDB)
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := repo.NextSequence(ctx, claim.NumberPrefix, 2030)
			require.NoError(t, err)
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		seq, err := repo.NextSequence(ctx, claim.NumberPrefix, 2030)
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)
	})

	c := claim.NewClaim(emp.ID, "Client visit", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), []claim.ClaimLine{
		{Category: "travel", Amount: decimal.RequireFromString("120.50")},
		{Category: "meal", Amount: decimal.RequireFromString("79.50")},
	})
	c.ClaimNumber = claim.FormatNumber(2025, 3)

	created, err := repo.Create(ctx, c)
	require.NoError(t, err)
	require.Len(t, created.Lines, 2)

	t.Run("duplicate number", func(t *testing.T) {
		_, err := repo.Create(ctx, c)
		assert.ErrorIs(t, err, claim.ErrClaimNumberExists)
	})

	t.Run("get loads lines", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "CLM-2025-00003", got.ClaimNumber)
		assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(200)))
		require.Len(t, got.Lines, 2)
		assert.Equal(t, 1, got.Lines[0].LineNo)
	})

	t.Run("conditional status update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NoError(t, got.Submit(time.Now()))
		require.NoError(t, repo.UpdateStatus(ctx, got, claim.StatusDraft))

		// a second writer still believing the claim is a draft loses
		assert.ErrorIs(t, repo.UpdateStatus(ctx, got, claim.StatusDraft), claim.ErrClaimModified)

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, claim.StatusPendingApproval, stored.Status)
		assert.NotNil(t, stored.SubmittedAt)
	})
}
