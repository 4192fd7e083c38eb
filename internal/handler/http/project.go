package http

import (
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		projectService: projectService,
	}
}

// List implements ProjectHandler.
func (h *projectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	filter := project.ProjectFilter{
		Search: r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
	}

	if cachedQuery(r) {
		response.Success(w, h.projectService.Cached(sess, filter))
		return
	}

	result, err := h.projectService.List(r.Context(), sess, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements ProjectHandler.
func (h *projectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req project.ProjectRequest
	if !decodeJSON(w, r, "CreateProject", &req) {
		return
	}

	notice, err := h.projectService.Create(r.Context(), sess, req)
	if err != nil {
		slog.Error("CreateProject service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, notice)
}

// Update implements ProjectHandler.
func (h *projectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}

	var req project.ProjectRequest
	if !decodeJSON(w, r, "UpdateProject", &req) {
		return
	}
	req.ID = id

	notice, err := h.projectService.Update(r.Context(), sess, req)
	if err != nil {
		slog.Error("UpdateProject service error", "error", err, "project_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// Delete implements ProjectHandler.
func (h *projectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}

	notice, err := h.projectService.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("DeleteProject service error", "error", err, "project_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// UpdateStatus implements ProjectHandler.
func (h *projectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Project")
	if !ok {
		return
	}

	var req project.UpdateStatusRequest
	if !decodeJSON(w, r, "UpdateProjectStatus", &req) {
		return
	}
	req.ID = id

	notice, err := h.projectService.UpdateStatus(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}
