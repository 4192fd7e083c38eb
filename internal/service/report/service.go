package report

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/report"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/service/aggregate"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
)

type ReportServiceImpl struct {
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	paymentRepo    payment.PaymentRepository
	coord          *coordinator.Coordinator
	now            func() time.Time
}

// NewReportService reads straight from the backend; reports never touch the
// session's record store.
func NewReportService(
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	paymentRepo payment.PaymentRepository,
	coord *coordinator.Coordinator,
) report.ReportService {
	return &ReportServiceImpl{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		coord:          coord,
		now:            time.Now,
	}
}

// GeneratePayrollReport implements report.ReportService.
func (s *ReportServiceImpl) GeneratePayrollReport(ctx context.Context, sess *session.Session, req report.PayrollReportRequest) (report.PayrollReport, error) {
	if err := req.Validate(); err != nil {
		return report.PayrollReport{}, err
	}
	period := req.Period()

	var (
		workers  []worker.Worker
		records  []attendance.Attendance
		payments []payment.Payment
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Workers
	g.Go(func() error {
		var err error
		workers, err = s.workerRepo.List(gCtx)
		return err
	})

	// 2. Attendance within the month
	g.Go(func() error {
		list, err := s.attendanceRepo.List(gCtx, period)
		if err != nil {
			return err
		}
		records = filter.Apply(list, filter.Attendance(period))
		return nil
	})

	// 3. Payments dated within the month
	g.Go(func() error {
		list, err := s.paymentRepo.List(gCtx)
		if err != nil {
			return err
		}
		payments = filter.Apply(list, func(p payment.Payment) bool {
			return p.Date != nil && period.Contains(*p.Date)
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.ErrorContext(ctx, "payroll report failed", "month", req.Month, "year", req.Year, "error", err)
		s.coord.Fail(ctx, sess, "Failed to generate report")
		return report.PayrollReport{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	return report.PayrollReport{
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		PeriodStart: *period.From,
		PeriodEnd:   *period.To,
		GeneratedAt: s.now(),
		Workers:     rows(workers, records, payments),
		Totals:      aggregate.Payroll(payments),
		Attendance:  aggregate.Attendance(records),
	}, nil
}

// rows joins attendance and payroll per worker, sorted by name then id.
func rows(workers []worker.Worker, records []attendance.Attendance, payments []payment.Payment) []report.PayrollReportRow {
	byID := make(map[int64]*report.PayrollReportRow, len(workers))
	for _, wt := range aggregate.PayrollByWorker(payments, workers) {
		byID[wt.WorkerID] = &report.PayrollReportRow{
			WorkerID:   wt.WorkerID,
			WorkerName: wt.WorkerName,
			EarnedPay:  decimal.Zero,
			Totals:     wt.Totals,
		}
	}
	for _, w := range workers {
		r := byID[w.ID]
		r.Phone = w.Phone
		r.RatePerDay = w.RatePerDay
	}
	for _, a := range records {
		r, ok := byID[a.WorkerID()]
		if !ok {
			r = &report.PayrollReportRow{
				WorkerID:   a.WorkerID(),
				WorkerName: a.Worker.RefName(),
				EarnedPay:  decimal.Zero,
				Totals:     aggregate.Payroll(nil),
			}
			byID[a.WorkerID()] = r
		}
		switch a.Status {
		case attendance.StatusPresent:
			r.Present++
		case attendance.StatusAbsent:
			r.Absent++
		}
		r.OvertimeHours += a.OvertimeHours
		r.EarnedPay = r.EarnedPay.Add(a.TotalPay)
	}

	out := make([]report.PayrollReportRow, 0, len(byID))
	for _, r := range byID {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b report.PayrollReportRow) int {
		return cmp.Or(cmp.Compare(a.WorkerName, b.WorkerName), cmp.Compare(a.WorkerID, b.WorkerID))
	})
	return out
}
