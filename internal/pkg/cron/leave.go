package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
)

// LeaveJobs contains leave ledger cron jobs
type LeaveJobs struct {
	leaveService leave.LeaveService
	now          func() time.Time
}

// NewLeaveJobs creates leave cron jobs
func NewLeaveJobs(leaveService leave.LeaveService) *LeaveJobs {
	return &LeaveJobs{
		leaveService: leaveService,
		now:          time.Now,
	}
}

// RegisterJobs registers the balance audit to run every interval.
func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.Add(Job{
		Name:     "leave-balance-audit",
		Interval: interval,
		Timeout:  5 * time.Minute,
		Fn:       j.AuditBalances,
	})
}

// AuditBalances checks the balances of the current year. In January the
// previous year is checked too, since late decisions still move it.
func (j *LeaveJobs) AuditBalances(ctx context.Context) error {
	now := j.now()
	years := []int{now.Year()}
	if now.Month() == time.January {
		years = append(years, now.Year()-1)
	}

	for _, year := range years {
		violations, err := j.leaveService.AuditBalances(ctx, year)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			slog.Warn("Leave balance audit found violations", "year", year, "count", len(violations))
		} else {
			slog.Debug("Leave balance audit clean", "year", year)
		}
	}
	return nil
}
