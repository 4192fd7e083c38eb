package report

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate Monthly Payroll Report
	GeneratePayrollReport(ctx context.Context, sess *session.Session, req PayrollReportRequest) (PayrollReport, error)

	// Export the same report as an XLSX workbook
	ExportPayrollReport(ctx context.Context, sess *session.Session, req PayrollReportRequest) (*File, error)
}
