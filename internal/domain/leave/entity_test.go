package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func freshBalance() LeaveBalance {
	return NewLeaveBalance("emp-1", "annual", 2025, days("14"), days("2"))
}

func TestNewLeaveBalance(t *testing.T) {
	b := freshBalance()

	assert.Equal(t, "16", b.Available.String())
	assert.True(t, b.Taken.IsZero())
	assert.True(t, b.Pending.IsZero())
	assert.NoError(t, b.CheckInvariant())
}

func TestLeaveBalance_ReserveThenApprove(t *testing.T) {
	before := freshBalance()

	reserved, err := before.Apply(TransitionReserve, days("3"))
	require.NoError(t, err)
	assert.Equal(t, "3", reserved.Pending.String())
	assert.Equal(t, "13", reserved.Available.String())

	approved, err := reserved.Apply(TransitionApprove, days("3"))
	require.NoError(t, err)
	assert.True(t, approved.Pending.Equal(before.Pending))
	assert.True(t, approved.Taken.Equal(before.Taken.Add(days("3"))))
	assert.Equal(t, "13", approved.Available.String())
	assert.NoError(t, approved.CheckInvariant())
}

func TestLeaveBalance_ReserveThenReject(t *testing.T) {
	before := freshBalance()

	reserved, err := before.Apply(TransitionReserve, days("2.5"))
	require.NoError(t, err)

	rejected, err := reserved.Apply(TransitionReject, days("2.5"))
	require.NoError(t, err)
	assert.True(t, rejected.Available.Equal(before.Available))
	assert.True(t, rejected.Pending.Equal(before.Pending))
	assert.True(t, rejected.Taken.Equal(before.Taken))
}

func TestLeaveBalance_ReserveThenRelease(t *testing.T) {
	before := freshBalance()

	reserved, err := before.Apply(TransitionReserve, days("1"))
	require.NoError(t, err)

	released, err := reserved.Apply(TransitionRelease, days("1"))
	require.NoError(t, err)
	assert.True(t, released.Available.Equal(before.Available))
	assert.True(t, released.Pending.IsZero())
}

func TestLeaveBalance_ReserveInsufficient(t *testing.T) {
	before := freshBalance()

	after, err := before.Apply(TransitionReserve, days("16.5"))

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, apperror.KindInsufficientBalance, apperror.KindOf(err))
	assert.Equal(t, before, after)
}

func TestLeaveBalance_ReserveExactlyAvailable(t *testing.T) {
	after, err := freshBalance().Apply(TransitionReserve, days("16"))

	require.NoError(t, err)
	assert.True(t, after.Available.IsZero())
}

func TestLeaveBalance_ApproveWithoutPending(t *testing.T) {
	_, err := freshBalance().Apply(TransitionApprove, days("1"))

	assert.ErrorIs(t, err, ErrBalanceInconsistent)
}

func TestLeaveBalance_NonPositiveDays(t *testing.T) {
	_, err := freshBalance().Apply(TransitionReserve, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidNumberOfDays)

	_, err = freshBalance().Apply(TransitionReserve, days("-1"))
	assert.ErrorIs(t, err, ErrInvalidNumberOfDays)
}

func TestLeaveBalance_UnknownTransition(t *testing.T) {
	_, err := freshBalance().Apply(Transition("carry"), days("1"))

	assert.Error(t, err)
}

func TestLeaveBalance_CheckInvariant(t *testing.T) {
	b := freshBalance()
	b.Taken = days("1")

	err := b.CheckInvariant()
	assert.ErrorIs(t, err, ErrBalanceInconsistent)

	b = freshBalance()
	b.Available = days("-1")
	b.Pending = days("17")
	err = b.CheckInvariant()
	assert.ErrorIs(t, err, ErrBalanceInconsistent)
	assert.Contains(t, err.Error(), "available is negative")
}

func TestLeaveRequest_Decide(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	reason := "peak season"

	r := LeaveRequest{Status: RequestStatusPending}
	require.NoError(t, r.Decide(RequestStatusRejected, "mgr-1", &reason, at))
	assert.Equal(t, RequestStatusRejected, r.Status)
	assert.Equal(t, "mgr-1", *r.DecidedBy)
	assert.Equal(t, at, *r.DecidedAt)
	assert.Equal(t, "peak season", *r.RejectionReason)

	err := r.Decide(RequestStatusApproved, "mgr-2", nil, at)
	assert.ErrorIs(t, err, ErrRequestAlreadyDecided)
	assert.Equal(t, apperror.KindInvalidTransition, apperror.KindOf(err))
	assert.Equal(t, RequestStatusRejected, r.Status)
}

func TestLeaveRequest_DecideToPendingRejected(t *testing.T) {
	r := LeaveRequest{Status: RequestStatusPending}

	err := r.Decide(RequestStatusPending, "mgr-1", nil, time.Now())

	assert.ErrorIs(t, err, ErrInvalidRequestTransition)
	assert.Equal(t, RequestStatusPending, r.Status)
	assert.Nil(t, r.DecidedBy)
}

func TestCreateLeaveRequestRequest_Validate(t *testing.T) {
	req := CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: "2025-12-30", EndDate: "2026-01-02"}

	start, end, n, err := req.Validate()

	require.NoError(t, err)
	assert.Equal(t, 2025, start.Year())
	assert.Equal(t, 2026, end.Year())
	assert.Equal(t, "4", n.String())

	half := days("0.5")
	req = CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: "2025-05-05", EndDate: "2025-05-05", NumberOfDays: &half}
	_, _, n, err = req.Validate()
	require.NoError(t, err)
	assert.Equal(t, "0.5", n.String())

	tooMany := days("3")
	req = CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: "2025-05-05", EndDate: "2025-05-06", NumberOfDays: &tooMany}
	_, _, _, err = req.Validate()
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	req = CreateLeaveRequestRequest{StartDate: "2025-05-06", EndDate: "2025-05-05"}
	_, _, _, err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employee_id")
	assert.Contains(t, err.Error(), "leave_type")
	assert.Contains(t, err.Error(), "end_date")
}

func TestCreateLeaveRequestRequest_ValidateDayPrecision(t *testing.T) {
	tests := []struct {
		name    string
		days    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "half day", days: "0.5", start: "2025-05-05", end: "2025-05-05"},
		{name: "trailing zeros", days: "1.500", start: "2025-05-05", end: "2025-05-06"},
		{name: "sub cent", days: "0.005", start: "2025-05-05", end: "2025-05-05", wantErr: true},
		{name: "three places", days: "1.125", start: "2025-05-05", end: "2025-05-06", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := days(tt.days)
			req := CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: tt.start, EndDate: tt.end, NumberOfDays: &d}

			_, _, n, err := req.Validate()

			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, n.Equal(d))
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), "number_of_days")
		})
	}
}

func TestCreateLeaveRequestRequest_ValidateSpanTooLong(t *testing.T) {
	req := CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: "2000-01-01", EndDate: "2030-01-01"}

	_, _, _, err := req.Validate()

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "number_of_days")
}

func TestCreateLeaveBalanceRequest_ValidateFitsLedger(t *testing.T) {
	carried := func(s string) *decimal.Decimal {
		d := days(s)
		return &d
	}

	tests := []struct {
		name      string
		req       CreateLeaveBalanceRequest
		wantField string
	}{
		{name: "valid", req: CreateLeaveBalanceRequest{Entitlement: days("14.5"), CarriedForward: carried("2.25")}},
		{name: "entitlement sub cent", req: CreateLeaveBalanceRequest{Entitlement: days("14.005")}, wantField: "entitlement"},
		{name: "entitlement too large", req: CreateLeaveBalanceRequest{Entitlement: days("100000")}, wantField: "entitlement"},
		{name: "carried forward sub cent", req: CreateLeaveBalanceRequest{Entitlement: days("14"), CarriedForward: carried("0.333")}, wantField: "carried_forward"},
		{name: "sum too large", req: CreateLeaveBalanceRequest{Entitlement: days("9000"), CarriedForward: carried("1000")}, wantField: "carried_forward"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.EmployeeID = "emp-1"
			tt.req.LeaveType = "annual"
			tt.req.Year = 2025

			err := tt.req.Validate()

			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

// Day counts that pass validation survive the two decimal storage unchanged,
// so the ledger invariant still holds on the stored row.
func TestLeaveBalance_ValidatedDaysKeepInvariantWhenStored(t *testing.T) {
	d := days("0.25")
	req := CreateLeaveRequestRequest{EmployeeID: "emp-1", LeaveType: "annual", StartDate: "2025-05-05", EndDate: "2025-05-05", NumberOfDays: &d}
	_, _, n, err := req.Validate()
	require.NoError(t, err)

	b := NewLeaveBalance("emp-1", "annual", 2025, days("10"), decimal.Zero)
	next, err := b.Apply(TransitionReserve, n)
	require.NoError(t, err)

	stored := next
	stored.Pending = next.Pending.Round(2)
	stored.Available = next.Available.Round(2)
	assert.NoError(t, stored.CheckInvariant())
	assert.True(t, stored.Pending.Equal(next.Pending))
}
