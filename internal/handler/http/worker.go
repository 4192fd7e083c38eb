package http

import (
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &workerHandlerImpl{
		workerService: workerService,
	}
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	search := r.URL.Query().Get("q")

	if cachedQuery(r) {
		response.Success(w, h.workerService.Cached(sess, search))
		return
	}

	result, err := h.workerService.List(r.Context(), sess, search)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements WorkerHandler.
func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req worker.WorkerRequest
	if !decodeJSON(w, r, "CreateWorker", &req) {
		return
	}

	notice, err := h.workerService.Create(r.Context(), sess, req)
	if err != nil {
		slog.Error("CreateWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, notice)
}

// Update implements WorkerHandler.
func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Worker")
	if !ok {
		return
	}

	var req worker.WorkerRequest
	if !decodeJSON(w, r, "UpdateWorker", &req) {
		return
	}
	req.ID = id

	notice, err := h.workerService.Update(r.Context(), sess, req)
	if err != nil {
		slog.Error("UpdateWorker service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// Delete implements WorkerHandler.
func (h *workerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Worker")
	if !ok {
		return
	}

	notice, err := h.workerService.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("DeleteWorker service error", "error", err, "worker_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// ResetPassword implements WorkerHandler.
func (h *workerHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Worker")
	if !ok {
		return
	}

	notice, err := h.workerService.ResetPassword(r.Context(), sess, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}
