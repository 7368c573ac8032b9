package claim

import "context"

type ClaimRepository interface {
	// NextSequence atomically increments and returns the counter of (prefix, year).
	NextSequence(ctx context.Context, prefix string, year int) (int64, error)
	// Create inserts the header and its lines.
	Create(ctx context.Context, claim Claim) (Claim, error)
	GetByID(ctx context.Context, id string) (Claim, error)
	List(ctx context.Context, filter ClaimFilter) ([]Claim, int64, error)
	// UpdateStatus writes the claim's status and stamps only while the stored
	// status is still from; otherwise ErrClaimModified.
	UpdateStatus(ctx context.Context, claim Claim, from Status) error
}
