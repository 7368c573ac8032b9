package leave

import "github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"

var (
	ErrLeaveRequestNotFound     = apperror.New(apperror.KindNotFound, "leave request not found")
	ErrLeaveBalanceNotFound     = apperror.New(apperror.KindNotFound, "leave balance not found")
	ErrLeaveBalanceExists       = apperror.New(apperror.KindConflict, "leave balance already exists for this employee, type and year")
	ErrInsufficientBalance      = apperror.New(apperror.KindInsufficientBalance, "insufficient leave balance")
	ErrRequestAlreadyDecided    = apperror.New(apperror.KindInvalidTransition, "leave request already processed")
	ErrInvalidRequestTransition = apperror.New(apperror.KindInvalidTransition, "invalid leave request transition")
	ErrBalanceModified          = apperror.New(apperror.KindConflict, "leave balance was modified concurrently")
	ErrBalanceInconsistent      = apperror.New(apperror.KindInternal, "leave balance invariant violated")
	ErrInvalidNumberOfDays      = apperror.New(apperror.KindValidation, "number of days must be positive")
)
