package http

import (
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard handles the admin landing page
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetMyDashboard handles the worker landing page
	GetMyDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.Admin(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyDashboard handles GET /me/dashboard
func (h *dashboardHandlerImpl) GetMyDashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.Worker(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
