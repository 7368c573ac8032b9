package mocks

import (
	"context"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/stretchr/testify/mock"
)

type ClaimRepository struct {
	mock.Mock
}

func (m *ClaimRepository) NextSequence(ctx context.Context, prefix string, year int) (int64, error) {
	args := m.Called(ctx, prefix, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ClaimRepository) Create(ctx context.Context, c claim.Claim) (claim.Claim, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(context.Context, claim.Claim) claim.Claim); ok {
		return fn(ctx, c), args.Error(1)
	}
	return args.Get(0).(claim.Claim), args.Error(1)
}

func (m *ClaimRepository) GetByID(ctx context.Context, id string) (claim.Claim, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(claim.Claim), args.Error(1)
}

func (m *ClaimRepository) List(ctx context.Context, filter claim.ClaimFilter) ([]claim.Claim, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]claim.Claim), args.Get(1).(int64), args.Error(2)
}

func (m *ClaimRepository) UpdateStatus(ctx context.Context, c claim.Claim, from claim.Status) error {
	args := m.Called(ctx, c, from)
	return args.Error(0)
}
