package leave

import (
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const maxLeaveTypeLength = 50

// maxDays is the largest day count the NUMERIC(6, 2) ledger columns hold.
var maxDays = decimal.RequireFromString("9999.99")

// ========== BALANCE DTOs ==========

type CreateLeaveBalanceRequest struct {
	EmployeeID     string           `json:"employee_id"`
	LeaveType      string           `json:"leave_type"`
	Year           int              `json:"year"`
	Entitlement    decimal.Decimal  `json:"entitlement"`
	CarriedForward *decimal.Decimal `json:"carried_forward,omitempty"`
}

func (r *CreateLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validateLeaveType(r.LeaveType)...)
	if r.Year < 2000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 9999"})
	}
	if r.Entitlement.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "entitlement", Message: "must be non-negative"})
	} else {
		errs = append(errs, validateDays("entitlement", r.Entitlement)...)
	}
	granted := r.Entitlement
	if r.CarriedForward != nil {
		if r.CarriedForward.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "carried_forward", Message: "must be non-negative"})
		} else {
			errs = append(errs, validateDays("carried_forward", *r.CarriedForward)...)
		}
		granted = granted.Add(*r.CarriedForward)
	}
	// available starts at the sum and shares the column limit
	if len(errs) == 0 && granted.GreaterThan(maxDays) {
		errs = append(errs, validator.ValidationError{Field: "carried_forward", Message: "entitlement plus carried_forward must not exceed 9999.99"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveBalanceResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	LeaveType      string          `json:"leave_type"`
	Year           int             `json:"year"`
	Entitlement    decimal.Decimal `json:"entitlement"`
	CarriedForward decimal.Decimal `json:"carried_forward"`
	Taken          decimal.Decimal `json:"taken"`
	Pending        decimal.Decimal `json:"pending"`
	Available      decimal.Decimal `json:"available"`
	Version        int64           `json:"version"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToBalanceResponse(b LeaveBalance) LeaveBalanceResponse {
	return LeaveBalanceResponse{
		ID:             b.ID,
		EmployeeID:     b.EmployeeID,
		EmployeeName:   b.EmployeeName,
		LeaveType:      b.LeaveType,
		Year:           b.Year,
		Entitlement:    b.Entitlement,
		CarriedForward: b.CarriedForward,
		Taken:          b.Taken,
		Pending:        b.Pending,
		Available:      b.Available,
		Version:        b.Version,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ========== REQUEST DTOs ==========

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	// NumberOfDays defaults to the inclusive calendar span; half days may be given explicitly.
	NumberOfDays *decimal.Decimal `json:"number_of_days,omitempty"`
	Reason       *string          `json:"reason,omitempty"`
}

// Validate checks the request and returns the parsed dates and day count.
func (r *CreateLeaveRequestRequest) Validate() (start, end time.Time, days decimal.Decimal, err error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validateLeaveType(r.LeaveType)...)

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		} else {
			span := decimal.NewFromInt(int64(end.Sub(start).Hours()/24) + 1)
			days = span
			if r.NumberOfDays != nil {
				days = *r.NumberOfDays
				if !validator.IsPositive(days) {
					errs = append(errs, validator.ValidationError{Field: "number_of_days", Message: "must be greater than 0"})
				} else if days.GreaterThan(span) {
					errs = append(errs, validator.ValidationError{Field: "number_of_days", Message: "must not exceed the days between start_date and end_date"})
				}
			}
			if days.IsPositive() {
				errs = append(errs, validateDays("number_of_days", days)...)
			}
		}
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, decimal.Zero, errs
	}
	return start, end, days, nil
}

type DecideLeaveRequestRequest struct {
	ID        string  `json:"-"`
	DecidedBy string  `json:"-"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if validator.IsEmpty(r.DecidedBy) {
		errs = append(errs, validator.ValidationError{Field: "decided_by", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	LeaveType  *string `json:"leave_type,omitempty"`
	Status     *string `json:"status,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *LeaveRequestFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type LeaveRequestResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	LeaveType       string          `json:"leave_type"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	NumberOfDays    decimal.Decimal `json:"number_of_days"`
	Reason          *string         `json:"reason,omitempty"`
	Status          string          `json:"status"`
	BalanceYear     int             `json:"balance_year"`
	BalanceTracked  bool            `json:"balance_tracked"`
	DecidedBy       *string         `json:"decided_by,omitempty"`
	DecidedAt       *time.Time      `json:"decided_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ToRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		LeaveType:       r.LeaveType,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		NumberOfDays:    r.NumberOfDays,
		Reason:          r.Reason,
		Status:          string(r.Status),
		BalanceYear:     r.BalanceYear,
		BalanceTracked:  r.BalanceTracked,
		DecidedBy:       r.DecidedBy,
		DecidedAt:       r.DecidedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

// validateDays checks that d fits the ledger columns exactly, so the stored
// counters add up to the same totals as the ones computed here.
func validateDays(field string, d decimal.Decimal) validator.ValidationErrors {
	if !d.Equal(d.Round(2)) {
		return validator.ValidationErrors{{Field: field, Message: "must have at most 2 decimal places"}}
	}
	if d.GreaterThan(maxDays) {
		return validator.ValidationErrors{{Field: field, Message: "must not exceed 9999.99"}}
	}
	return nil
}

func validateLeaveType(leaveType string) validator.ValidationErrors {
	if validator.IsEmpty(leaveType) {
		return validator.ValidationErrors{{Field: "leave_type", Message: "is required"}}
	}
	if len(leaveType) > maxLeaveTypeLength {
		return validator.ValidationErrors{{Field: "leave_type", Message: "must be at most 50 characters"}}
	}
	return nil
}
