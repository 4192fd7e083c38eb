package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/report"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Payroll Report
	GetPayrollReport(w http.ResponseWriter, r *http.Request)

	// Payroll Report as a workbook download
	ExportPayrollReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetPayrollReport handles GET /reports/payroll
func (h *reportHandlerImpl) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	req, ok := parseReportPeriod(w, r)
	if !ok {
		return
	}

	result, err := h.reportService.GeneratePayrollReport(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportPayrollReport handles GET /reports/payroll.xlsx
func (h *reportHandlerImpl) ExportPayrollReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	req, ok := parseReportPeriod(w, r)
	if !ok {
		return
	}

	file, err := h.reportService.ExportPayrollReport(r.Context(), sess, req)
	if err != nil {
		slog.Error("ExportPayrollReport service error", "error", err, "month", req.Month, "year", req.Year)
		response.HandleError(w, err)
		return
	}

	response.File(w, file.Name, file.ContentType, file.Data)
}

// parseReportPeriod reads ?month=&year=. Both empty means the current month.
func parseReportPeriod(w http.ResponseWriter, r *http.Request) (report.PayrollReportRequest, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")

	if monthStr == "" && yearStr == "" {
		now := time.Now()
		return report.PayrollReportRequest{Month: int(now.Month()), Year: now.Year()}, true
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "invalid month parameter", nil)
		return report.PayrollReportRequest{}, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "invalid year parameter", nil)
		return report.PayrollReportRequest{}, false
	}

	return report.PayrollReportRequest{Month: month, Year: year}, true
}
