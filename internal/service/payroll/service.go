package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           database.Transactor
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	rates        StatutoryRates
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewPayrollService(
	db database.Transactor,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	m *metrics.Metrics,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		rates:        DefaultStatutoryRates(),
		metrics:      m,
		now:          time.Now,
	}
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	created, err := s.payrollRepo.CreatePeriod(ctx, payroll.PayrollPeriod{
		Month:  req.Month,
		Year:   req.Year,
		Status: payroll.PeriodStatusOpen,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	slog.Info("Payroll period created", "period_id", created.ID, "month", created.Month, "year", created.Year)
	return payroll.ToPeriodResponse(created), nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodResponse, error) {
	filter.Normalize()
	if filter.Status != nil && !validator.IsInSlice(*filter.Status, []string{string(payroll.PeriodStatusOpen), string(payroll.PeriodStatusCompleted)}) {
		return payroll.ListPeriodResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be 'open' or 'completed'"},
		}
	}

	periods, total, err := s.payrollRepo.ListPeriods(ctx, filter)
	if err != nil {
		return payroll.ListPeriodResponse{}, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, payroll.ToPeriodResponse(p))
	}

	return payroll.ListPeriodResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Periods:    responses,
	}, nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, periodID string) ([]payroll.EntryResponse, error) {
	if _, err := s.payrollRepo.GetPeriodByID(ctx, periodID); err != nil {
		return nil, err
	}

	entries, err := s.payrollRepo.ListEntries(ctx, periodID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, payroll.ToEntryResponse(e))
	}
	return responses, nil
}

// ========== PROCESSING ==========

// ProcessPeriod moves an open period to completed. The period row stays locked
// for the whole run, so a concurrent call waits and then sees it completed.
func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, req payroll.ProcessPeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	var completed payroll.PayrollPeriod
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(txCtx, req.PeriodID)
		if err != nil {
			return err
		}
		if period.Status != payroll.PeriodStatusOpen {
			return payroll.ErrPeriodAlreadyCompleted
		}

		employees, err := s.employeeRepo.ListActive(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}

		var totals payroll.PeriodTotals
		for _, emp := range employees {
			contribution := s.rates.Calculate(emp.Salary())

			_, err := s.payrollRepo.CreateEntry(txCtx, payroll.PayrollEntry{
				PeriodID:              period.ID,
				EmployeeID:            emp.ID,
				StatutoryContribution: contribution,
			})
			if err != nil {
				return fmt.Errorf("failed to create payroll entry for employee %s: %w", emp.ID, err)
			}
			totals.Add(contribution)
		}

		period.Complete(totals, req.ProcessedBy, s.now())
		if err := s.payrollRepo.CompletePeriod(txCtx, period); err != nil {
			return err
		}

		completed = period
		return nil
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	s.metrics.PayrollPeriodProcessed(completed.TotalEmployees)
	slog.Info("Payroll period processed",
		"period_id", completed.ID,
		"employees", completed.TotalEmployees,
		"total_net_pay", completed.TotalNetPay.StringFixed(2),
		"processed_by", req.ProcessedBy,
	)

	return payroll.ToPeriodResponse(completed), nil
}

func (s *PayrollServiceImpl) PreviewStatutory(ctx context.Context, req payroll.PreviewStatutoryRequest) (payroll.StatutoryResponse, error) {
	basic := decimal.Zero
	if req.BasicSalary != nil {
		basic = *req.BasicSalary
	}
	return payroll.ToStatutoryResponse(s.rates.Calculate(basic)), nil
}
