package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/backoffice-go/internal/config"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/employee"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/backoffice-go/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerTestDeps struct {
	router    *chi.Mux
	employee  *mocks.EmployeeService
	payroll   *mocks.PayrollService
	leave     *mocks.LeaveService
	claim     *mocks.ClaimService
	dashboard *mocks.DashboardService
}

func newTestRouter() routerTestDeps {
	d := routerTestDeps{
		employee:  new(mocks.EmployeeService),
		payroll:   new(mocks.PayrollService),
		leave:     new(mocks.LeaveService),
		claim:     new(mocks.ClaimService),
		dashboard: new(mocks.DashboardService),
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	d.router = NewRouter(config.HTTPConfig{AllowedOrigins: []string{"http://localhost:3000"}}, logger, Handlers{
		Employee:  NewEmployeeHandler(d.employee),
		Payroll:   NewPayrollHandler(d.payroll),
		Leave:     NewLeaveHandler(d.leave),
		Claim:     NewClaimHandler(d.claim),
		Dashboard: NewDashboardHandler(d.dashboard),
	}, nil, prometheus.NewRegistry())
	return d
}

func (d routerTestDeps) do(method, path, body, actor string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	rec := httptest.NewRecorder()
	d.router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Employees(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		d := newTestRouter()
		d.employee.On("CreateEmployee", mock.Anything, mock.MatchedBy(func(req employee.CreateEmployeeRequest) bool {
			return req.EmployeeCode == "E-001"
		})).Return(employee.EmployeeResponse{ID: "emp-1", EmployeeCode: "E-001"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/employees", `{"employee_code":"E-001","full_name":"Siti","base_salary":"5000"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decodeResponse(t, rec).Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		d := newTestRouter()
		rec := d.do(http.MethodPost, "/api/v1/employees", `{`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		d.employee.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("salary update takes id from path", func(t *testing.T) {
		d := newTestRouter()
		d.employee.On("UpdateBaseSalary", mock.Anything, mock.MatchedBy(func(req employee.UpdateBaseSalaryRequest) bool {
			return req.ID == "emp-1" && req.BaseSalary.Equal(decimal.NewFromInt(6000))
		})).Return(employee.EmployeeResponse{ID: "emp-1"}, nil)

		rec := d.do(http.MethodPatch, "/api/v1/employees/emp-1/salary", `{"base_salary":"6000"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.employee.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		d := newTestRouter()
		d.employee.On("GetEmployee", mock.Anything, "missing").Return(employee.EmployeeResponse{}, employee.ErrEmployeeNotFound)

		rec := d.do(http.MethodGet, "/api/v1/employees/missing", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeResponse(t, rec).Error.Code)
	})
}

func TestRouter_Payroll(t *testing.T) {
	t.Run("process requires actor", func(t *testing.T) {
		d := newTestRouter()
		rec := d.do(http.MethodPost, "/api/v1/payroll/periods/p-1/process", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		d.payroll.AssertNotCalled(t, "ProcessPeriod", mock.Anything, mock.Anything)
	})

	t.Run("process passes actor", func(t *testing.T) {
		d := newTestRouter()
		d.payroll.On("ProcessPeriod", mock.Anything, payroll.ProcessPeriodRequest{PeriodID: "p-1", ProcessedBy: "hr-1"}).
			Return(payroll.PeriodResponse{ID: "p-1", Status: "completed"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/payroll/periods/p-1/process", "", "hr-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.payroll.AssertExpectations(t)
	})

	t.Run("reprocessing is a conflict", func(t *testing.T) {
		d := newTestRouter()
		d.payroll.On("ProcessPeriod", mock.Anything, mock.Anything).Return(payroll.PeriodResponse{}, payroll.ErrPeriodAlreadyCompleted)

		rec := d.do(http.MethodPost, "/api/v1/payroll/periods/p-1/process", "", "hr-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", decodeResponse(t, rec).Error.Code)
	})

	t.Run("list parses filters", func(t *testing.T) {
		d := newTestRouter()
		d.payroll.On("ListPeriods", mock.Anything, mock.MatchedBy(func(f payroll.PeriodFilter) bool {
			return f.Year != nil && *f.Year == 2025 && f.Status != nil && *f.Status == "open" && f.Page == 2 && f.Limit == 10
		})).Return(payroll.ListPeriodResponse{}, nil)

		rec := d.do(http.MethodGet, "/api/v1/payroll/periods?year=2025&status=open&page=2&limit=10", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.payroll.AssertExpectations(t)
	})

	t.Run("list pagination goes to meta", func(t *testing.T) {
		d := newTestRouter()
		d.payroll.On("ListPeriods", mock.Anything, mock.Anything).Return(payroll.ListPeriodResponse{
			TotalCount: 21,
			Page:       2,
			Limit:      10,
			TotalPages: 3,
			Periods:    []payroll.PeriodResponse{{ID: "p-11"}},
		}, nil)

		rec := d.do(http.MethodGet, "/api/v1/payroll/periods?page=2&limit=10", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data []payroll.PeriodResponse `json:"data"`
			Meta response.Meta            `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 1)
		assert.Equal(t, "p-11", body.Data[0].ID)
		assert.Equal(t, response.Meta{Page: 2, Limit: 10, TotalItems: 21, TotalPages: 3}, body.Meta)
	})

	t.Run("bad year", func(t *testing.T) {
		d := newTestRouter()
		rec := d.do(http.MethodGet, "/api/v1/payroll/periods?year=abc", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("statutory preview", func(t *testing.T) {
		d := newTestRouter()
		d.payroll.On("PreviewStatutory", mock.Anything, mock.Anything).
			Return(payroll.StatutoryResponse{BasicSalary: decimal.NewFromInt(5000)}, nil)

		rec := d.do(http.MethodPost, "/api/v1/payroll/statutory/preview", `{"basic_salary":"5000"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Leave(t *testing.T) {
	t.Run("create request with insufficient balance", func(t *testing.T) {
		d := newTestRouter()
		d.leave.On("CreateRequest", mock.Anything, mock.Anything).Return(leave.LeaveRequestResponse{}, leave.ErrInsufficientBalance)

		rec := d.do(http.MethodPost, "/api/v1/leave/requests",
			`{"employee_id":"emp-1","leave_type":"annual","start_date":"2025-07-01","end_date":"2025-07-03"}`, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "INSUFFICIENT_BALANCE", decodeResponse(t, rec).Error.Code)
	})

	t.Run("approve without body", func(t *testing.T) {
		d := newTestRouter()
		d.leave.On("ApproveRequest", mock.Anything, leave.DecideLeaveRequestRequest{ID: "lr-1", DecidedBy: "mgr-1"}).
			Return(leave.LeaveRequestResponse{ID: "lr-1", Status: "approved"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/leave/requests/lr-1/approve", "", "mgr-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.leave.AssertExpectations(t)
	})

	t.Run("reject with reason", func(t *testing.T) {
		d := newTestRouter()
		d.leave.On("RejectRequest", mock.Anything, mock.MatchedBy(func(req leave.DecideLeaveRequestRequest) bool {
			return req.ID == "lr-1" && req.DecidedBy == "mgr-1" && req.Reason != nil && *req.Reason == "peak season"
		})).Return(leave.LeaveRequestResponse{ID: "lr-1", Status: "rejected"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/leave/requests/lr-1/reject", `{"reason":"peak season"}`, "mgr-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.leave.AssertExpectations(t)
	})

	t.Run("decision requires actor", func(t *testing.T) {
		d := newTestRouter()
		rec := d.do(http.MethodPost, "/api/v1/leave/requests/lr-1/approve", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("balances need employee", func(t *testing.T) {
		d := newTestRouter()
		rec := d.do(http.MethodGet, "/api/v1/leave/balances?year=2025", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("balances default year", func(t *testing.T) {
		d := newTestRouter()
		d.leave.On("GetBalances", mock.Anything, "emp-1", 0).Return([]leave.LeaveBalanceResponse{}, nil)

		rec := d.do(http.MethodGet, "/api/v1/leave/balances?employee_id=emp-1", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.leave.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		d := newTestRouter()
		d.leave.On("DeleteRequest", mock.Anything, "lr-1").Return(nil)

		rec := d.do(http.MethodDelete, "/api/v1/leave/requests/lr-1", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Claims(t *testing.T) {
	t.Run("submit does not need actor", func(t *testing.T) {
		d := newTestRouter()
		d.claim.On("SubmitClaim", mock.Anything, "c-1").Return(claim.ClaimResponse{ID: "c-1", Status: "pending_approval"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/claims/c-1/submit", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pay passes reference and actor", func(t *testing.T) {
		d := newTestRouter()
		d.claim.On("PayClaim", mock.Anything, claim.PayClaimRequest{ID: "c-1", PaidBy: "fin-1", PaymentReference: "TRX-9"}).
			Return(claim.ClaimResponse{ID: "c-1", Status: "paid"}, nil)

		rec := d.do(http.MethodPost, "/api/v1/claims/c-1/pay", `{"payment_reference":"TRX-9"}`, "fin-1")

		assert.Equal(t, http.StatusOK, rec.Code)
		d.claim.AssertExpectations(t)
	})

	t.Run("illegal transition", func(t *testing.T) {
		d := newTestRouter()
		d.claim.On("ApproveClaim", mock.Anything, mock.Anything).Return(claim.ClaimResponse{}, claim.ErrInvalidClaimTransition)

		rec := d.do(http.MethodPost, "/api/v1/claims/c-1/approve", "", "mgr-1")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "INVALID_TRANSITION", decodeResponse(t, rec).Error.Code)
	})

	t.Run("list filters", func(t *testing.T) {
		d := newTestRouter()
		d.claim.On("ListClaims", mock.Anything, mock.MatchedBy(func(f claim.ClaimFilter) bool {
			return f.EmployeeID != nil && *f.EmployeeID == "emp-1" && f.Year == nil
		})).Return(claim.ListClaimResponse{}, nil)

		rec := d.do(http.MethodGet, "/api/v1/claims?employee_id=emp-1", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, decodeResponse(t, rec).Meta)
		d.claim.AssertExpectations(t)
	})
}

func TestRouter_Dashboard(t *testing.T) {
	d := newTestRouter()
	d.dashboard.On("GetDashboard", mock.Anything, 2024).Return(&dashboard.DashboardResponse{Year: 2024}, nil)

	rec := d.do(http.MethodGet, "/api/v1/dashboard?year=2024", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	d.dashboard.AssertExpectations(t)

	rec = d.do(http.MethodGet, "/api/v1/dashboard?year=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	d := newTestRouter()
	rec := d.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
