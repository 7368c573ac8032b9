package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	// Balance
	CreateBalance(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)

	// Request
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	DeleteRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// ========== BALANCE ==========

func (h *leaveHandlerImpl) CreateBalance(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.CreateBalance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balance created", result)
}

// GetBalances handles GET /leave/balances?employee_id=&year=
func (h *leaveHandlerImpl) GetBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	var y int
	if year != nil {
		y = *year
	}

	result, err := h.leaveService.GetBalances(r.Context(), employeeID, y)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== REQUEST ==========

func (h *leaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created", result)
}

func (h *leaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := h.leaveService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveRequestFilter{
		EmployeeID: queryString(r, "employee_id"),
		LeaveType:  queryString(r, "leave_type"),
		Status:     queryString(r, "status"),
	}
	filter.Page, filter.Limit = pagination(r)

	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	filter.Year = year

	result, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Requests, response.NewMeta(result.Page, result.Limit, result.TotalCount, result.TotalPages))
}

func (h *leaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLeaveDecision(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.ApproveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

func (h *leaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeLeaveDecision(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.RejectRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

func (h *leaveHandlerImpl) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	if err := h.leaveService.DeleteRequest(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// decodeLeaveDecision reads the optional reason body; an empty body is allowed.
func decodeLeaveDecision(w http.ResponseWriter, r *http.Request) (leave.DecideLeaveRequestRequest, bool) {
	var req leave.DecideLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}
	req.ID = chi.URLParam(r, "id")
	req.DecidedBy, _ = middleware.ActorFromContext(r.Context())
	return req, true
}
