package response

import (
	"errors"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/report"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session errors
	case errors.Is(err, session.ErrNoSession),
		errors.Is(err, session.ErrMalformedWorkerSession),
		errors.Is(err, notification.ErrNoSubscriberKey):
		Unauthorized(w, "Please log in")
	case errors.Is(err, session.ErrPasswordResetRequired):
		ResetRequired(w, err.Error())
	case errors.Is(err, session.ErrAdminRequired),
		errors.Is(err, session.ErrWorkerRequired):
		Forbidden(w, err.Error())

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, siteapi.ErrUnauthorized):
		Unauthorized(w, "Invalid phone or password")
	case errors.Is(err, auth.ErrUnexpectedReply):
		BadGateway(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Task domain errors
	case errors.Is(err, task.ErrNotOwnTask),
		errors.Is(err, task.ErrBackwardStatus):
		Forbidden(w, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")

	// Backend errors
	case errors.Is(err, siteapi.ErrNotFound):
		NotFound(w, "Resource not found")
	case errors.Is(err, siteapi.ErrConflict):
		Conflict(w, backendMessage(err, "Conflict"))
	case errors.Is(err, report.ErrReportGenerationFailed):
		BadGateway(w, "Failed to generate report")
	case errors.Is(err, siteapi.ErrUnavailable):
		BadGateway(w, "Backend is unavailable")
	case isAPIError(err):
		BadGateway(w, backendMessage(err, "Backend request failed"))

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func isAPIError(err error) bool {
	var apiErr *siteapi.APIError
	return errors.As(err, &apiErr)
}

func backendMessage(err error, fallback string) string {
	var apiErr *siteapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
