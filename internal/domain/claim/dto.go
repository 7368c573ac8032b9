package claim

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const maxClaimLines = 50

// ========== REQUEST DTOs ==========

type ClaimLineRequest struct {
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ReceiptDate *string         `json:"receipt_date,omitempty"`
}

type CreateClaimRequest struct {
	EmployeeID string             `json:"employee_id"`
	Title      string             `json:"title"`
	ClaimDate  string             `json:"claim_date"`
	Lines      []ClaimLineRequest `json:"lines"`
}

// Validate checks the request and returns the parsed claim date and lines.
func (r *CreateClaimRequest) Validate() (time.Time, []ClaimLine, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	} else if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must be at most 255 characters"})
	}
	claimDate, ok := validator.IsValidDate(r.ClaimDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "claim_date", Message: "must be in YYYY-MM-DD format"})
	}

	switch {
	case len(r.Lines) == 0:
		errs = append(errs, validator.ValidationError{Field: "lines", Message: "must contain at least one line"})
	case len(r.Lines) > maxClaimLines:
		errs = append(errs, validator.ValidationError{Field: "lines", Message: fmt.Sprintf("must contain at most %d lines", maxClaimLines)})
	}

	lines := make([]ClaimLine, 0, len(r.Lines))
	for i, l := range r.Lines {
		field := fmt.Sprintf("lines[%d]", i)
		line := ClaimLine{Category: l.Category, Description: l.Description, Amount: l.Amount}

		if validator.IsEmpty(l.Category) {
			errs = append(errs, validator.ValidationError{Field: field + ".category", Message: "is required"})
		}
		if !validator.IsPositive(l.Amount) {
			errs = append(errs, validator.ValidationError{Field: field + ".amount", Message: "must be greater than 0"})
		} else if !l.Amount.Equal(l.Amount.Round(2)) {
			errs = append(errs, validator.ValidationError{Field: field + ".amount", Message: "must have at most 2 decimal places"})
		}
		if l.ReceiptDate != nil {
			d, ok := validator.IsValidDate(*l.ReceiptDate)
			if !ok {
				errs = append(errs, validator.ValidationError{Field: field + ".receipt_date", Message: "must be in YYYY-MM-DD format"})
			} else {
				line.ReceiptDate = &d
			}
		}
		lines = append(lines, line)
	}

	if len(errs) > 0 {
		return time.Time{}, nil, errs
	}
	return claimDate, lines, nil
}

// DecideClaimRequest carries an approval or rejection. Reason is kept only on rejection.
type DecideClaimRequest struct {
	ID        string  `json:"-"`
	DecidedBy string  `json:"-"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *DecideClaimRequest) Validate() error {
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

type PayClaimRequest struct {
	ID               string `json:"-"`
	PaidBy           string `json:"-"`
	PaymentReference string `json:"payment_reference"`
}

func (r *PayClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if validator.IsEmpty(r.PaidBy) {
		errs = append(errs, validator.ValidationError{Field: "paid_by", Message: "is required"})
	}
	if validator.IsEmpty(r.PaymentReference) {
		errs = append(errs, validator.ValidationError{Field: "payment_reference", Message: "is required"})
	} else if len(r.PaymentReference) > 100 {
		errs = append(errs, validator.ValidationError{Field: "payment_reference", Message: "must be at most 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClaimFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *ClaimFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ========== RESPONSE DTOs ==========

type ClaimLineResponse struct {
	LineNo      int             `json:"line_no"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ReceiptDate *string         `json:"receipt_date,omitempty"`
}

type ClaimResponse struct {
	ID               string              `json:"id"`
	ClaimNumber      string              `json:"claim_number"`
	EmployeeID       string              `json:"employee_id"`
	EmployeeName     *string             `json:"employee_name,omitempty"`
	Title            string              `json:"title"`
	ClaimDate        string              `json:"claim_date"`
	Status           string              `json:"status"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	ReceiptCount     int                 `json:"receipt_count"`
	SubmittedAt      *time.Time          `json:"submitted_at,omitempty"`
	ApprovedBy       *string             `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time          `json:"approved_at,omitempty"`
	RejectedBy       *string             `json:"rejected_by,omitempty"`
	RejectedAt       *time.Time          `json:"rejected_at,omitempty"`
	RejectionReason  *string             `json:"rejection_reason,omitempty"`
	PaidBy           *string             `json:"paid_by,omitempty"`
	PaidAt           *time.Time          `json:"paid_at,omitempty"`
	PaymentReference *string             `json:"payment_reference,omitempty"`
	Lines            []ClaimLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func ToClaimResponse(c Claim) ClaimResponse {
	var lines []ClaimLineResponse
	if len(c.Lines) > 0 {
		lines = make([]ClaimLineResponse, 0, len(c.Lines))
		for _, l := range c.Lines {
			lr := ClaimLineResponse{
				LineNo:      l.LineNo,
				Category:    l.Category,
				Description: l.Description,
				Amount:      l.Amount,
			}
			if l.ReceiptDate != nil {
				d := l.ReceiptDate.Format("2006-01-02")
				lr.ReceiptDate = &d
			}
			lines = append(lines, lr)
		}
	}

	return ClaimResponse{
		ID:               c.ID,
		ClaimNumber:      c.ClaimNumber,
		EmployeeID:       c.EmployeeID,
		EmployeeName:     c.EmployeeName,
		Title:            c.Title,
		ClaimDate:        c.ClaimDate.Format("2006-01-02"),
		Status:           string(c.Status),
		TotalAmount:      c.TotalAmount,
		ReceiptCount:     c.ReceiptCount,
		SubmittedAt:      c.SubmittedAt,
		ApprovedBy:       c.ApprovedBy,
		ApprovedAt:       c.ApprovedAt,
		RejectedBy:       c.RejectedBy,
		RejectedAt:       c.RejectedAt,
		RejectionReason:  c.RejectionReason,
		PaidBy:           c.PaidBy,
		PaidAt:           c.PaidAt,
		PaymentReference: c.PaymentReference,
		Lines:            lines,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type ListClaimResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Claims     []ClaimResponse `json:"claims"`
}
