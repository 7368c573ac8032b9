package claim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft           Status = "draft"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusPaid            Status = "paid"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusPaid:
		return true
	}
	return false
}

var transitions = map[Status][]Status{
	StatusDraft:           {StatusPendingApproval},
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusPaid},
}

// CanTransition reports whether a claim may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NumberPrefix is the document prefix of claim numbers.
const NumberPrefix = "CLM"

// FormatNumber renders a claim number, e.g. CLM-2025-00042.
func FormatNumber(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", NumberPrefix, year, seq)
}

// Claim - expense claim header
type Claim struct {
	ID               string
	ClaimNumber      string
	EmployeeID       string
	Title            string
	ClaimDate        time.Time
	Status           Status
	TotalAmount      decimal.Decimal
	ReceiptCount     int
	SubmittedAt      *time.Time
	ApprovedBy       *string
	ApprovedAt       *time.Time
	RejectedBy       *string
	RejectedAt       *time.Time
	RejectionReason  *string
	PaidBy           *string
	PaidAt           *time.Time
	PaymentReference *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Lines []ClaimLine

	// Joined fields
	EmployeeName *string
}

// ClaimLine - one receipt on a claim
type ClaimLine struct {
	ID          string
	ClaimID     string
	LineNo      int
	Category    string
	Description *string
	Amount      decimal.Decimal
	ReceiptDate *time.Time
}

// NewClaim builds a draft claim whose total and receipt count follow its lines.
func NewClaim(employeeID, title string, claimDate time.Time, lines []ClaimLine) Claim {
	total := decimal.Zero
	numbered := make([]ClaimLine, len(lines))
	for i, l := range lines {
		l.LineNo = i + 1
		numbered[i] = l
		total = total.Add(l.Amount)
	}
	return Claim{
		EmployeeID:   employeeID,
		Title:        title,
		ClaimDate:    claimDate,
		Status:       StatusDraft,
		TotalAmount:  total,
		ReceiptCount: len(lines),
		Lines:        numbered,
	}
}

func (c *Claim) transition(to Status) error {
	if !CanTransition(c.Status, to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidClaimTransition, c.Status, to)
	}
	c.Status = to
	return nil
}

func (c *Claim) Submit(at time.Time) error {
	if err := c.transition(StatusPendingApproval); err != nil {
		return err
	}
	c.SubmittedAt = &at
	return nil
}

func (c *Claim) Approve(by string, at time.Time) error {
	if err := c.transition(StatusApproved); err != nil {
		return err
	}
	c.ApprovedBy = &by
	c.ApprovedAt = &at
	return nil
}

func (c *Claim) Reject(by string, reason *string, at time.Time) error {
	if err := c.transition(StatusRejected); err != nil {
		return err
	}
	c.RejectedBy = &by
	c.RejectedAt = &at
	c.RejectionReason = reason
	return nil
}

func (c *Claim) Pay(by, reference string, at time.Time) error {
	if err := c.transition(StatusPaid); err != nil {
		return err
	}
	c.PaidBy = &by
	c.PaidAt = &at
	c.PaymentReference = &reference
	return nil
}
