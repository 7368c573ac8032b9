package claim

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
)

type ClaimServiceImpl struct {
	db           database.Transactor
	claimRepo    claim.ClaimRepository
	employeeRepo employee.EmployeeRepository
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewClaimService(
	db database.Transactor,
	claimRepo claim.ClaimRepository,
	employeeRepo employee.EmployeeRepository,
	m *metrics.Metrics,
) claim.ClaimService {
	return &ClaimServiceImpl{
		db:           db,
		claimRepo:    claimRepo,
		employeeRepo: employeeRepo,
		metrics:      m,
		now:          time.Now,
	}
}

// CreateClaim stores a draft claim. The number is drawn from the yearly
// counter in the same transaction as the insert, so a rolled back claim
// gives its number back.
func (s *ClaimServiceImpl) CreateClaim(ctx context.Context, req claim.CreateClaimRequest) (claim.ClaimResponse, error) {
	claimDate, lines, err := req.Validate()
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	var created claim.Claim
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			return err
		}

		c := claim.NewClaim(req.EmployeeID, req.Title, claimDate, lines)

		seq, err := s.claimRepo.NextSequence(txCtx, claim.NumberPrefix, claimDate.Year())
		if err != nil {
			return err
		}
		c.ClaimNumber = claim.FormatNumber(claimDate.Year(), seq)

		created, err = s.claimRepo.Create(txCtx, c)
		return err
	})
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	s.metrics.ClaimTransition(string(created.Status))
	slog.Info("Claim created",
		"claim_id", created.ID,
		"claim_number", created.ClaimNumber,
		"employee_id", created.EmployeeID,
		"total_amount", created.TotalAmount.String(),
		"receipt_count", created.ReceiptCount,
	)
	return claim.ToClaimResponse(created), nil
}

func (s *ClaimServiceImpl) SubmitClaim(ctx context.Context, id string) (claim.ClaimResponse, error) {
	if validator.IsEmpty(id) {
		return claim.ClaimResponse{}, validator.ValidationErrors{{Field: "id", Message: "is required"}}
	}
	return s.transition(ctx, id, "", func(c *claim.Claim, at time.Time) error {
		return c.Submit(at)
	})
}

func (s *ClaimServiceImpl) ApproveClaim(ctx context.Context, req claim.DecideClaimRequest) (claim.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return claim.ClaimResponse{}, err
	}
	return s.transition(ctx, req.ID, req.DecidedBy, func(c *claim.Claim, at time.Time) error {
		return c.Approve(req.DecidedBy, at)
	})
}

func (s *ClaimServiceImpl) RejectClaim(ctx context.Context, req claim.DecideClaimRequest) (claim.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return claim.ClaimResponse{}, err
	}
	return s.transition(ctx, req.ID, req.DecidedBy, func(c *claim.Claim, at time.Time) error {
		return c.Reject(req.DecidedBy, req.Reason, at)
	})
}

func (s *ClaimServiceImpl) PayClaim(ctx context.Context, req claim.PayClaimRequest) (claim.ClaimResponse, error) {
	if err := req.Validate(); err != nil {
		return claim.ClaimResponse{}, err
	}
	return s.transition(ctx, req.ID, req.PaidBy, func(c *claim.Claim, at time.Time) error {
		return c.Pay(req.PaidBy, req.PaymentReference, at)
	})
}

// transition reads the claim, applies move and writes it back conditioned on
// the status it was read with.
func (s *ClaimServiceImpl) transition(ctx context.Context, id, actor string, move func(c *claim.Claim, at time.Time) error) (claim.ClaimResponse, error) {
	c, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return claim.ClaimResponse{}, err
	}

	from := c.Status
	if err := move(&c, s.now()); err != nil {
		return claim.ClaimResponse{}, err
	}

	if err := s.claimRepo.UpdateStatus(ctx, c, from); err != nil {
		return claim.ClaimResponse{}, err
	}

	s.metrics.ClaimTransition(string(c.Status))
	slog.Info("Claim status changed",
		"claim_id", c.ID,
		"claim_number", c.ClaimNumber,
		"from", from,
		"to", c.Status,
		"actor", actor,
	)
	return claim.ToClaimResponse(c), nil
}

func (s *ClaimServiceImpl) GetClaim(ctx context.Context, id string) (claim.ClaimResponse, error) {
	c, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return claim.ClaimResponse{}, err
	}
	return claim.ToClaimResponse(c), nil
}

func (s *ClaimServiceImpl) ListClaims(ctx context.Context, filter claim.ClaimFilter) (claim.ListClaimResponse, error) {
	filter.Normalize()
	if filter.Status != nil && !claim.Status(*filter.Status).IsValid() {
		return claim.ListClaimResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "must be one of draft, pending_approval, approved, rejected, paid"},
		}
	}

	claims, total, err := s.claimRepo.List(ctx, filter)
	if err != nil {
		return claim.ListClaimResponse{}, err
	}

	responses := make([]claim.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		responses = append(responses, claim.ToClaimResponse(c))
	}

	return claim.ListClaimResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Claims:     responses,
	}, nil
}
