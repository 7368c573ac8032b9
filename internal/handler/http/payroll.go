package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Periods
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	ProcessPeriod(w http.ResponseWriter, r *http.Request)

	// Statutory
	PreviewStatutory(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll period created", result)
}

func (h *payrollHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PeriodFilter{Status: queryString(r, "status")}
	filter.Page, filter.Limit = pagination(r)

	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	filter.Year = year

	result, err := h.payrollService.ListPeriods(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Periods, response.NewMeta(result.Page, result.Limit, result.TotalCount, result.TotalPages))
}

func (h *payrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Period ID is required", nil)
		return
	}

	result, err := h.payrollService.ListEntries(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ProcessPeriod handles POST /payroll/periods/{id}/process
func (h *payrollHandlerImpl) ProcessPeriod(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	req := payroll.ProcessPeriodRequest{
		PeriodID:    chi.URLParam(r, "id"),
		ProcessedBy: actor,
	}

	result, err := h.payrollService.ProcessPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll period processed", result)
}

// ========== STATUTORY ==========

func (h *payrollHandlerImpl) PreviewStatutory(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewStatutoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.PreviewStatutory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
