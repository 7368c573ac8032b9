package mocks

import (
	"context"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/stretchr/testify/mock"
)

type PayrollRepository struct {
	mock.Mock
}

func (m *PayrollRepository) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	args := m.Called(ctx, period)
	return args.Get(0).(payroll.PayrollPeriod), args.Error(1)
}

func (m *PayrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PayrollPeriod), args.Error(1)
}

func (m *PayrollRepository) GetPeriodForUpdate(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.PayrollPeriod), args.Error(1)
}

func (m *PayrollRepository) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PayrollPeriod, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.PayrollPeriod), args.Get(1).(int64), args.Error(2)
}

func (m *PayrollRepository) CompletePeriod(ctx context.Context, period payroll.PayrollPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *PayrollRepository) CreateEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(payroll.PayrollEntry), args.Error(1)
}

func (m *PayrollRepository) ListEntries(ctx context.Context, periodID string) ([]payroll.PayrollEntry, error) {
	args := m.Called(ctx, periodID)
	return args.Get(0).([]payroll.PayrollEntry), args.Error(1)
}
