package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ClaimHandler interface {
	CreateClaim(w http.ResponseWriter, r *http.Request)
	GetClaim(w http.ResponseWriter, r *http.Request)
	ListClaims(w http.ResponseWriter, r *http.Request)

	// Workflow
	SubmitClaim(w http.ResponseWriter, r *http.Request)
	ApproveClaim(w http.ResponseWriter, r *http.Request)
	RejectClaim(w http.ResponseWriter, r *http.Request)
	PayClaim(w http.ResponseWriter, r *http.Request)
}

type claimHandlerImpl struct {
	claimService claim.ClaimService
}

func NewClaimHandler(claimService claim.ClaimService) ClaimHandler {
	return &claimHandlerImpl{claimService: claimService}
}

func (h *claimHandlerImpl) CreateClaim(w http.ResponseWriter, r *http.Request) {
	var req claim.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.claimService.CreateClaim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Claim created", result)
}

func (h *claimHandlerImpl) GetClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Claim ID is required", nil)
		return
	}

	result, err := h.claimService.GetClaim(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *claimHandlerImpl) ListClaims(w http.ResponseWriter, r *http.Request) {
	filter := claim.ClaimFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
	}
	filter.Page, filter.Limit = pagination(r)

	year, ok := queryInt(r, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}
	filter.Year = year

	result, err := h.claimService.ListClaims(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Claims, response.NewMeta(result.Page, result.Limit, result.TotalCount, result.TotalPages))
}

// ========== WORKFLOW ==========

func (h *claimHandlerImpl) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Claim ID is required", nil)
		return
	}

	result, err := h.claimService.SubmitClaim(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Claim submitted", result)
}

func (h *claimHandlerImpl) ApproveClaim(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClaimDecision(w, r)
	if !ok {
		return
	}

	result, err := h.claimService.ApproveClaim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Claim approved", result)
}

func (h *claimHandlerImpl) RejectClaim(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeClaimDecision(w, r)
	if !ok {
		return
	}

	result, err := h.claimService.RejectClaim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Claim rejected", result)
}

// PayClaim handles POST /claims/{id}/pay
func (h *claimHandlerImpl) PayClaim(w http.ResponseWriter, r *http.Request) {
	var req claim.PayClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.PaidBy, _ = middleware.ActorFromContext(r.Context())

	result, err := h.claimService.PayClaim(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Claim paid", result)
}

func decodeClaimDecision(w http.ResponseWriter, r *http.Request) (claim.DecideClaimRequest, bool) {
	var req claim.DecideClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}
	req.ID = chi.URLParam(r, "id")
	req.DecidedBy, _ = middleware.ActorFromContext(r.Context())
	return req, true
}
