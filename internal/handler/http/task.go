package http

import (
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	// UpdateStatus serves both panels; the service applies the worker rules.
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetMyTasks(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{
		taskService: taskService,
	}
}

// List implements TaskHandler.
func (h *taskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	filter := task.TaskFilter{
		Search:    r.URL.Query().Get("q"),
		WorkerID:  int64Query(r, "worker"),
		ProjectID: int64Query(r, "project"),
		Status:    r.URL.Query().Get("status"),
	}

	if cachedQuery(r) {
		response.Success(w, h.taskService.Cached(sess, filter))
		return
	}

	result, err := h.taskService.List(r.Context(), sess, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements TaskHandler.
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req task.TaskRequest
	if !decodeJSON(w, r, "CreateTask", &req) {
		return
	}

	notice, err := h.taskService.Create(r.Context(), sess, req)
	if err != nil {
		slog.Error("CreateTask service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, notice)
}

// Update implements TaskHandler.
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Task")
	if !ok {
		return
	}

	var req task.TaskRequest
	if !decodeJSON(w, r, "UpdateTask", &req) {
		return
	}
	req.ID = id

	notice, err := h.taskService.Update(r.Context(), sess, req)
	if err != nil {
		slog.Error("UpdateTask service error", "error", err, "task_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// Delete implements TaskHandler.
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Task")
	if !ok {
		return
	}

	notice, err := h.taskService.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("DeleteTask service error", "error", err, "task_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// UpdateStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Task")
	if !ok {
		return
	}

	var req task.UpdateStatusRequest
	if !decodeJSON(w, r, "UpdateTaskStatus", &req) {
		return
	}
	req.ID = id

	notice, err := h.taskService.UpdateStatus(r.Context(), sess, req)
	if err != nil {
		slog.Warn("UpdateTaskStatus rejected", "error", err, "task_id", id, "session", sess.Key())
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// GetMyTasks implements TaskHandler.
func (h *taskHandlerImpl) GetMyTasks(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var q task.WorkerTaskQuery
	if month := r.URL.Query().Get("month"); month != "" {
		year, m, err := calendar.ParseMonth(month, calendar.Date{})
		if err != nil {
			response.BadRequest(w, "month must be YYYY-MM", nil)
			return
		}
		q.Year, q.Month = year, int(m)
	}
	selected, err := calendar.ParseOptional(r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}
	q.Selected = selected

	if cachedQuery(r) {
		response.Success(w, h.taskService.CachedMine(sess, q))
		return
	}

	result, err := h.taskService.Mine(r.Context(), sess, q)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
