package claim

import "github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"

var (
	ErrClaimNotFound          = apperror.New(apperror.KindNotFound, "claim not found")
	ErrClaimNumberExists      = apperror.New(apperror.KindConflict, "claim number already exists")
	ErrClaimModified          = apperror.New(apperror.KindConflict, "claim was modified concurrently")
	ErrInvalidClaimTransition = apperror.New(apperror.KindInvalidTransition, "invalid claim status transition")
)
