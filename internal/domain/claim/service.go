package claim

import "context"

type ClaimService interface {
	CreateClaim(ctx context.Context, req CreateClaimRequest) (ClaimResponse, error)
	SubmitClaim(ctx context.Context, id string) (ClaimResponse, error)
	ApproveClaim(ctx context.Context, req DecideClaimRequest) (ClaimResponse, error)
	RejectClaim(ctx context.Context, req DecideClaimRequest) (ClaimResponse, error)
	PayClaim(ctx context.Context, req PayClaimRequest) (ClaimResponse, error)
	GetClaim(ctx context.Context, id string) (ClaimResponse, error)
	ListClaims(ctx context.Context, filter ClaimFilter) (ListClaimResponse, error)
}
