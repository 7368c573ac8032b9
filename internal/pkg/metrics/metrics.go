package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	httpRequestsTotal       *prometheus.CounterVec
	payrollPeriodsProcessed prometheus.Counter
	payrollEntriesCreated   prometheus.Counter
	leaveTransitions        *prometheus.CounterVec
	leaveBalanceViolations  prometheus.Counter
	claimTransitions        *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		payrollPeriodsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "payroll_periods_processed_total",
			Help:      "Payroll periods moved from open to completed",
		}),
		payrollEntriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "payroll_entries_created_total",
			Help:      "Payroll entries written by period processing",
		}),
		leaveTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "backoffice",
				Name:      "leave_transitions_total",
				Help:      "Leave ledger transitions applied",
			},
			[]string{"transition"},
		),
		leaveBalanceViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "leave_balance_violations_total",
			Help:      "Leave balances found breaking the conservation invariant by the audit job",
		}),
		claimTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "backoffice",
				Name:      "claim_transitions_total",
				Help:      "Claim status transitions by target status",
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.payrollPeriodsProcessed,
		m.payrollEntriesCreated,
		m.leaveTransitions,
		m.leaveBalanceViolations,
		m.claimTransitions,
	)
	return m
}

func (m *Metrics) PayrollPeriodProcessed(entries int) {
	if m == nil {
		return
	}
	m.payrollPeriodsProcessed.Inc()
	m.payrollEntriesCreated.Add(float64(entries))
}

func (m *Metrics) LeaveTransition(transition string) {
	if m == nil {
		return
	}
	m.leaveTransitions.WithLabelValues(transition).Inc()
}

func (m *Metrics) LeaveBalanceViolations(n int) {
	if m == nil || n == 0 {
		return
	}
	m.leaveBalanceViolations.Add(float64(n))
}

func (m *Metrics) ClaimTransition(status string) {
	if m == nil {
		return
	}
	m.claimTransitions.WithLabelValues(status).Inc()
}

// Middleware counts requests by route pattern, method and status code.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			next.ServeHTTP(w, r)
			return
		}

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequestsTotal.WithLabelValues(path, r.Method, strconv.Itoa(status)).Inc()
	})
}
