package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
)

type Response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Data    any                  `json:"data,omitempty"`
	Error   *ErrorDetail         `json:"error,omitempty"`
	Notice  *notification.Notice `json:"notice,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "ENCODING_ERROR",
				Message: "Failed to encode response",
			},
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

func writeError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	writeJSON(w, statusCode, Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Success responses
func Success(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Notice replies to a mutation with the notice it produced.
func Notice(w http.ResponseWriter, n notification.Notice) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: n.Message,
		Notice:  &n,
	})
}

func Created(w http.ResponseWriter, n notification.Notice) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: n.Message,
		Notice:  &n,
	})
}

// File streams a download.
func File(w http.ResponseWriter, name, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeError(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, "FORBIDDEN", message, nil)
}

// ResetRequired blocks a worker who still has to change the initial password.
func ResetRequired(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, "RESET_REQUIRED", message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, "CONFLICT", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}

func BadGateway(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadGateway, "BAD_GATEWAY", message, nil)
}
