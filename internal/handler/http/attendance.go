package http

import (
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	View(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	MarkBulk(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// View implements AttendanceHandler.
func (h *attendanceHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	rng, ok := rangeQuery(w, r)
	if !ok {
		return
	}

	if cachedQuery(r) {
		response.Success(w, h.attendanceService.Cached(sess, rng))
		return
	}

	result, err := h.attendanceService.View(r.Context(), sess, rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Mark implements AttendanceHandler.
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req attendance.MarkRequest
	if !decodeJSON(w, r, "MarkAttendance", &req) {
		return
	}

	notice, err := h.attendanceService.MarkIndividual(r.Context(), sess, req)
	if err != nil {
		slog.Error("MarkAttendance service error", "error", err, "worker_id", req.WorkerID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, notice)
}

// MarkBulk implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkBulk(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req attendance.BulkRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, "MarkBulkAttendance", &req) {
			return
		}
	}

	notice, err := h.attendanceService.MarkBulk(r.Context(), sess, req)
	if err != nil {
		slog.Error("MarkBulkAttendance service error", "error", err, "entries", len(req.Entries))
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Attendance")
	if !ok {
		return
	}

	var req attendance.UpdateRequest
	if !decodeJSON(w, r, "UpdateAttendance", &req) {
		return
	}
	req.ID = id

	notice, err := h.attendanceService.Update(r.Context(), sess, req)
	if err != nil {
		slog.Error("UpdateAttendance service error", "error", err, "attendance_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, "Attendance")
	if !ok {
		return
	}

	notice, err := h.attendanceService.Delete(r.Context(), sess, id)
	if err != nil {
		slog.Error("DeleteAttendance service error", "error", err, "attendance_id", id)
		response.HandleError(w, err)
		return
	}
	response.Notice(w, notice)
}

// GetMyAttendance implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	rng, ok := rangeQuery(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.Mine(r.Context(), sess, rng)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
