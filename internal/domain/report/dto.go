package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// ========================================
// MONTHLY PAYROLL REPORT
// ========================================

type PayrollReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PayrollReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	return errs.Err()
}

// Period is the inclusive range of days the report covers.
func (r PayrollReportRequest) Period() calendar.Range {
	first := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
	from := calendar.Of(first)
	to := calendar.Of(first.AddDate(0, 1, -1))
	return calendar.Range{From: &from, To: &to}
}

type PayrollReport struct {
	PeriodMonth int           `json:"periodMonth"`
	PeriodYear  int           `json:"periodYear"`
	PeriodStart calendar.Date `json:"periodStart"`
	PeriodEnd   calendar.Date `json:"periodEnd"`
	GeneratedAt time.Time     `json:"generatedAt"`

	Workers    []PayrollReportRow `json:"workers"`
	Totals     payment.Totals     `json:"totals"`
	Attendance attendance.Summary `json:"attendance"`
}

// PayrollReportRow is one worker's month: attendance, what the backend says
// they earned and what was paid out.
type PayrollReportRow struct {
	WorkerID      int64           `json:"workerId"`
	WorkerName    string          `json:"workerName"`
	Phone         string          `json:"phone"`
	RatePerDay    decimal.Decimal `json:"ratePerDay"`
	Present       int             `json:"present"`
	Absent        int             `json:"absent"`
	OvertimeHours float64         `json:"overtimeHours"`
	EarnedPay     decimal.Decimal `json:"earnedPay"`
	payment.Totals
}

// File is a generated download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
