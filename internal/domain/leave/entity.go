package leave

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LeaveBalance - per employee, leave type and year day counters.
// Entitlement + CarriedForward == Taken + Pending + Available after every transition.
type LeaveBalance struct {
	ID             string
	EmployeeID     string
	LeaveType      string
	Year           int
	Entitlement    decimal.Decimal
	CarriedForward decimal.Decimal
	Taken          decimal.Decimal
	Pending        decimal.Decimal
	Available      decimal.Decimal
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

// NewLeaveBalance opens a balance with nothing taken or pending.
func NewLeaveBalance(employeeID, leaveType string, year int, entitlement, carriedForward decimal.Decimal) LeaveBalance {
	return LeaveBalance{
		EmployeeID:     employeeID,
		LeaveType:      leaveType,
		Year:           year,
		Entitlement:    entitlement,
		CarriedForward: carriedForward,
		Taken:          decimal.Zero,
		Pending:        decimal.Zero,
		Available:      entitlement.Add(carriedForward),
	}
}

// Transition is a ledger movement caused by a leave request changing state.
type Transition string

const (
	TransitionReserve Transition = "reserve" // request created
	TransitionApprove Transition = "approve"
	TransitionReject  Transition = "reject"
	TransitionRelease Transition = "release" // pending request deleted
)

// Apply returns the balance after moving days through transition t.
// The receiver is left untouched.
func (b LeaveBalance) Apply(t Transition, days decimal.Decimal) (LeaveBalance, error) {
	if !days.IsPositive() {
		return b, ErrInvalidNumberOfDays
	}

	next := b
	switch t {
	case TransitionReserve:
		if b.Available.LessThan(days) {
			return b, ErrInsufficientBalance
		}
		next.Pending = b.Pending.Add(days)
		next.Available = b.Available.Sub(days)
	case TransitionApprove:
		if b.Pending.LessThan(days) {
			return b, fmt.Errorf("%w: pending %s below %s", ErrBalanceInconsistent, b.Pending, days)
		}
		next.Pending = b.Pending.Sub(days)
		next.Taken = b.Taken.Add(days)
	case TransitionReject, TransitionRelease:
		if b.Pending.LessThan(days) {
			return b, fmt.Errorf("%w: pending %s below %s", ErrBalanceInconsistent, b.Pending, days)
		}
		next.Pending = b.Pending.Sub(days)
		next.Available = b.Available.Add(days)
	default:
		return b, fmt.Errorf("unknown leave transition %q", t)
	}

	if err := next.CheckInvariant(); err != nil {
		return b, err
	}
	return next, nil
}

// CheckInvariant verifies conservation of days and that no counter is negative.
func (b LeaveBalance) CheckInvariant() error {
	granted := b.Entitlement.Add(b.CarriedForward)
	accounted := b.Taken.Add(b.Pending).Add(b.Available)
	if !granted.Equal(accounted) {
		return fmt.Errorf("%w: entitlement %s + carried forward %s != taken %s + pending %s + available %s",
			ErrBalanceInconsistent, b.Entitlement, b.CarriedForward, b.Taken, b.Pending, b.Available)
	}
	for name, v := range map[string]decimal.Decimal{
		"entitlement":     b.Entitlement,
		"carried_forward": b.CarriedForward,
		"taken":           b.Taken,
		"pending":         b.Pending,
		"available":       b.Available,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s is negative (%s)", ErrBalanceInconsistent, name, v)
		}
	}
	return nil
}

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays decimal.Decimal
	Reason       *string
	Status       RequestStatus

	// BalanceYear is the balance the request was booked against: year(StartDate),
	// so a request spanning Dec 31 is charged entirely to the start year.
	BalanceYear int
	// BalanceTracked is false when no balance existed at creation; such
	// requests never move any balance.
	BalanceTracked bool

	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// Decide moves a pending request to approved or rejected.
func (r *LeaveRequest) Decide(status RequestStatus, by string, reason *string, at time.Time) error {
	if r.Status != RequestStatusPending {
		return fmt.Errorf("%w: request is %s", ErrRequestAlreadyDecided, r.Status)
	}
	switch status {
	case RequestStatusApproved:
	case RequestStatusRejected:
		r.RejectionReason = reason
	default:
		return fmt.Errorf("%w: cannot move request to %s", ErrInvalidRequestTransition, status)
	}
	r.Status = status
	r.DecidedBy = &by
	r.DecidedAt = &at
	return nil
}
