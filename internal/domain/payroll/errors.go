package payroll

import "github.com/cmlabs-hris/backoffice-go/internal/pkg/apperror"

var (
	ErrPeriodNotFound         = apperror.New(apperror.KindNotFound, "payroll period not found")
	ErrPeriodAlreadyExists    = apperror.New(apperror.KindConflict, "payroll period already exists for this month")
	ErrPeriodAlreadyCompleted = apperror.New(apperror.KindInvalidTransition, "payroll period already completed")
	ErrEntryAlreadyExists     = apperror.New(apperror.KindConflict, "payroll entry already exists for this employee and period")
)
