package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sitemgmt/site-panel-go/internal/domain/report"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

const (
	sheetPayroll = "Payroll"
	sheetSummary = "Summary"
)

var payrollHeader = []any{
	"Worker ID", "Worker", "Phone", "Rate/Day", "Present", "Absent",
	"Overtime (h)", "Earned", "Salary Paid", "Advance Paid", "Balance",
}

// ExportPayrollReport implements report.ReportService.
func (s *ReportServiceImpl) ExportPayrollReport(ctx context.Context, sess *session.Session, req report.PayrollReportRequest) (*report.File, error) {
	rep, err := s.GeneratePayrollReport(ctx, sess, req)
	if err != nil {
		return nil, err
	}

	data, err := renderXLSX(rep)
	if err != nil {
		s.coord.Fail(ctx, sess, "Failed to generate report")
		return nil, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}
	s.coord.Info(ctx, sess, "Report generated")

	return &report.File{
		Name:        fmt.Sprintf("payroll-%04d-%02d.xlsx", rep.PeriodYear, rep.PeriodMonth),
		ContentType: report.ContentTypeXLSX,
		Data:        data,
	}, nil
}

func renderXLSX(rep report.PayrollReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetPayroll)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	header := payrollHeader
	if err := f.SetSheetRow(sheetPayroll, "A1", &header); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetPayroll, "A1", "K1", bold); err != nil {
		return nil, err
	}
	for i, r := range rep.Workers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			r.WorkerID, r.WorkerName, r.Phone, r.RatePerDay.InexactFloat64(), r.Present, r.Absent,
			r.OvertimeHours, r.EarnedPay.InexactFloat64(), r.TotalSalary.InexactFloat64(),
			r.TotalAdvance.InexactFloat64(), r.Balance.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheetPayroll, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheetPayroll, "B", "C", 20); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"Period", fmt.Sprintf("%s to %s", rep.PeriodStart, rep.PeriodEnd)},
		{"Generated", rep.GeneratedAt.Format("2006-01-02 15:04")},
		{"Total salary", rep.Totals.TotalSalary.InexactFloat64()},
		{"Total advance", rep.Totals.TotalAdvance.InexactFloat64()},
		{"Balance", rep.Totals.Balance.InexactFloat64()},
		{"Present", rep.Attendance.Present},
		{"Absent", rep.Attendance.Absent},
		{"Overtime (h)", rep.Attendance.OvertimeHours},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetSummary, "A", "B", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
