package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/report"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", validator.ValidationErrors{{Field: "name", Message: "is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("save: %w", validator.ValidationErrors{{Field: "x", Message: "y"}}), http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"duplicate attendance", attendance.ErrAttendanceAlreadyMarked, http.StatusConflict, "CONFLICT"},
		{"backend conflict", &siteapi.APIError{StatusCode: 409, Message: "exists"}, http.StatusConflict, "CONFLICT"},
		{"no session", session.ErrNoSession, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad login", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"backend 401", &siteapi.APIError{StatusCode: 401}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"reset required", session.ErrPasswordResetRequired, http.StatusForbidden, "RESET_REQUIRED"},
		{"admin only", session.ErrAdminRequired, http.StatusForbidden, "FORBIDDEN"},
		{"not own task", task.ErrNotOwnTask, http.StatusForbidden, "FORBIDDEN"},
		{"task missing", task.ErrTaskNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"backend 404", &siteapi.APIError{StatusCode: 404}, http.StatusNotFound, "NOT_FOUND"},
		{"backend 500", &siteapi.APIError{StatusCode: 500, Message: "boom"}, http.StatusBadGateway, "BAD_GATEWAY"},
		{"backend down", fmt.Errorf("GET /api/workers: %w", siteapi.ErrUnavailable), http.StatusBadGateway, "BAD_GATEWAY"},
		{"report", report.ErrReportGenerationFailed, http.StatusBadGateway, "BAD_GATEWAY"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{{Field: "amount", Message: "must be greater than 0"}})

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, map[string]string{"amount": "must be greater than 0"}, body.Error.Details)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, "payroll-2024-06.xlsx", "application/octet-stream", []byte("abc"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="payroll-2024-06.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "3", rec.Header().Get("Content-Length"))
	assert.Equal(t, "abc", rec.Body.String())
}
