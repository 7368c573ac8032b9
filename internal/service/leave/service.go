package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct {
	db           database.Transactor
	balanceRepo  leave.LeaveBalanceRepository
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewLeaveService(
	db database.Transactor,
	balanceRepo leave.LeaveBalanceRepository,
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	m *metrics.Metrics,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:           db,
		balanceRepo:  balanceRepo,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		metrics:      m,
		now:          time.Now,
	}
}

// ========== BALANCE ==========

func (s *LeaveServiceImpl) CreateBalance(ctx context.Context, req leave.CreateLeaveBalanceRequest) (leave.LeaveBalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	carried := decimal.Zero
	if req.CarriedForward != nil {
		carried = *req.CarriedForward
	}

	created, err := s.balanceRepo.Create(ctx, leave.NewLeaveBalance(req.EmployeeID, req.LeaveType, req.Year, req.Entitlement, carried))
	if err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	slog.Info("Leave balance opened",
		"balance_id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"year", created.Year,
		"available", created.Available.String(),
	)
	return leave.ToBalanceResponse(created), nil
}

func (s *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalanceResponse, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "is required"}}
	}
	if year == 0 {
		year = s.now().Year()
	}

	balances, err := s.balanceRepo.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.ToBalanceResponse(b))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) AuditBalances(ctx context.Context, year int) ([]leave.LeaveBalanceResponse, error) {
	balances, err := s.balanceRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	violations := make([]leave.LeaveBalanceResponse, 0)
	for _, b := range balances {
		if err := b.CheckInvariant(); err != nil {
			slog.Warn("Leave balance invariant violated",
				"balance_id", b.ID,
				"employee_id", b.EmployeeID,
				"leave_type", b.LeaveType,
				"year", b.Year,
				"error", err,
			)
			violations = append(violations, leave.ToBalanceResponse(b))
		}
	}

	s.metrics.LeaveBalanceViolations(len(violations))
	return violations, nil
}

// ========== REQUEST ==========

func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	start, end, days, err := req.Validate()
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var created leave.LeaveRequest
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			return err
		}

		request := leave.LeaveRequest{
			EmployeeID:   req.EmployeeID,
			LeaveType:    req.LeaveType,
			StartDate:    start,
			EndDate:      end,
			NumberOfDays: days,
			Reason:       req.Reason,
			Status:       leave.RequestStatusPending,
			BalanceYear:  start.Year(),
		}

		balance, err := s.balanceRepo.GetForUpdate(txCtx, req.EmployeeID, req.LeaveType, request.BalanceYear)
		switch {
		case errors.Is(err, leave.ErrLeaveBalanceNotFound):
			// Untracked leave type for this year: the request carries no reservation.
		case err != nil:
			return err
		default:
			if err := s.moveBalance(txCtx, balance, leave.TransitionReserve, days); err != nil {
				return err
			}
			request.BalanceTracked = true
		}

		created, err = s.requestRepo.Create(txCtx, request)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if created.BalanceTracked {
		s.metrics.LeaveTransition(string(leave.TransitionReserve))
	}
	slog.Info("Leave request created",
		"request_id", created.ID,
		"employee_id", created.EmployeeID,
		"days", created.NumberOfDays.String(),
		"balance_tracked", created.BalanceTracked,
	)
	return leave.ToRequestResponse(created), nil
}

func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.RequestStatusApproved, leave.TransitionApprove)
}

func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req, leave.RequestStatusRejected, leave.TransitionReject)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequestRequest, status leave.RequestStatus, transition leave.Transition) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var decided leave.LeaveRequest
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.GetForUpdate(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := request.Decide(status, req.DecidedBy, req.Reason, s.now()); err != nil {
			return err
		}

		if request.BalanceTracked {
			if err := s.moveRequestBalance(txCtx, request, transition); err != nil {
				return err
			}
		}

		if err := s.requestRepo.UpdateDecision(txCtx, request); err != nil {
			return err
		}
		decided = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if decided.BalanceTracked {
		s.metrics.LeaveTransition(string(transition))
	}
	slog.Info("Leave request decided", "request_id", decided.ID, "status", decided.Status, "decided_by", req.DecidedBy)
	return leave.ToRequestResponse(decided), nil
}

// DeleteRequest removes a request. Only a pending, tracked request gives its
// reserved days back; decided requests leave the balance as it is.
func (s *LeaveServiceImpl) DeleteRequest(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "is required"}}
	}

	var released bool
	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if request.Status == leave.RequestStatusPending && request.BalanceTracked {
			if err := s.moveRequestBalance(txCtx, request, leave.TransitionRelease); err != nil {
				return err
			}
			released = true
		}

		return s.requestRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	if released {
		s.metrics.LeaveTransition(string(leave.TransitionRelease))
	}
	slog.Info("Leave request deleted", "request_id", id, "released", released)
	return nil
}

func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToRequestResponse(request), nil
}

func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	filter.Normalize()
	if filter.Status != nil && !validator.IsInSlice(*filter.Status, []string{
		string(leave.RequestStatusPending),
		string(leave.RequestStatusApproved),
		string(leave.RequestStatusRejected),
	}) {
		return leave.ListLeaveRequestResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be one of pending, approved, rejected"},
		}
	}

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToRequestResponse(r))
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Requests:   responses,
	}, nil
}

// ========== LEDGER ==========

// moveRequestBalance locks the balance the request was booked against and applies t.
func (s *LeaveServiceImpl) moveRequestBalance(ctx context.Context, request leave.LeaveRequest, t leave.Transition) error {
	balance, err := s.balanceRepo.GetForUpdate(ctx, request.EmployeeID, request.LeaveType, request.BalanceYear)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveBalanceNotFound) {
			return fmt.Errorf("%w: balance for request %s is gone", leave.ErrBalanceInconsistent, request.ID)
		}
		return err
	}
	return s.moveBalance(ctx, balance, t, request.NumberOfDays)
}

func (s *LeaveServiceImpl) moveBalance(ctx context.Context, balance leave.LeaveBalance, t leave.Transition, days decimal.Decimal) error {
	next, err := balance.Apply(t, days)
	if err != nil {
		return err
	}
	if _, err := s.balanceRepo.Update(ctx, next); err != nil {
		return err
	}
	return nil
}
