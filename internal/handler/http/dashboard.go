package http

import (
	"net/http"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the back-office summary for ?year= (default current year)
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(r, "year")
	if !ok || (year != nil && *year < 0) {
		response.BadRequest(w, "year must be a positive number", nil)
		return
	}

	var y int
	if year != nil {
		y = *year
	}

	result, err := h.dashboardService.GetDashboard(r.Context(), y)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
