// Package aggregate computes the derived figures shown on the dashboards and
// list pages. Every function is pure and leaves its inputs untouched.
package aggregate

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// SeriesMonths is the length of the finance chart.
const SeriesMonths = 6

// Payroll sums salary and advance payments. Other types are ignored.
func Payroll(payments []payment.Payment) payment.Totals {
	salary, advance := decimal.Zero, decimal.Zero
	for _, p := range payments {
		switch p.Type {
		case payment.TypeSalary:
			salary = salary.Add(p.Amount)
		case payment.TypeAdvance:
			advance = advance.Add(p.Amount)
		}
	}
	return payment.Totals{
		TotalSalary:  salary,
		TotalAdvance: advance,
		Balance:      salary.Sub(advance),
	}
}

// PayrollByWorker gives one row per worker that is known or has been paid,
// sorted by name then id.
func PayrollByWorker(payments []payment.Payment, workers []worker.Worker) []payment.WorkerTotals {
	rows := make(map[int64]*payment.WorkerTotals, len(workers))
	row := func(id int64, name string) *payment.WorkerTotals {
		r, ok := rows[id]
		if !ok {
			r = &payment.WorkerTotals{WorkerID: id, Totals: Payroll(nil)}
			rows[id] = r
		}
		if r.WorkerName == "" {
			r.WorkerName = name
		}
		return r
	}

	for _, w := range workers {
		row(w.ID, w.Name)
	}
	for _, p := range payments {
		if p.Worker == nil {
			continue
		}
		r := row(p.Worker.ID, p.Worker.Name)
		switch p.Type {
		case payment.TypeSalary:
			r.TotalSalary = r.TotalSalary.Add(p.Amount)
		case payment.TypeAdvance:
			r.TotalAdvance = r.TotalAdvance.Add(p.Amount)
		}
		r.Balance = r.TotalSalary.Sub(r.TotalAdvance)
	}

	out := make([]payment.WorkerTotals, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b payment.WorkerTotals) int {
		return cmp.Or(cmp.Compare(a.WorkerName, b.WorkerName), cmp.Compare(a.WorkerID, b.WorkerID))
	})
	return out
}

// TopPaid returns up to n rows with the highest salary total, highest first.
// Rows without salary are left out.
func TopPaid(rows []payment.WorkerTotals, n int) []payment.TopPaid {
	paid := make([]payment.WorkerTotals, 0, len(rows))
	for _, r := range rows {
		if r.TotalSalary.IsPositive() {
			paid = append(paid, r)
		}
	}
	slices.SortStableFunc(paid, func(a, b payment.WorkerTotals) int {
		return b.TotalSalary.Cmp(a.TotalSalary)
	})
	if n >= 0 && len(paid) > n {
		paid = paid[:n]
	}

	out := make([]payment.TopPaid, len(paid))
	for i, r := range paid {
		out[i] = payment.TopPaid{WorkerID: r.WorkerID, WorkerName: r.WorkerName, Amount: r.TotalSalary}
	}
	return out
}

// Attendance counts present and absent records and totals overtime and pay.
func Attendance(records []attendance.Attendance) attendance.Summary {
	s := attendance.Summary{Total: len(records), TotalPay: decimal.Zero}
	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			s.Present++
		case attendance.StatusAbsent:
			s.Absent++
		}
		s.OvertimeHours += r.OvertimeHours
		s.TotalPay = s.TotalPay.Add(r.TotalPay)
	}
	return s
}

// IsOverdue reports a task whose deadline has passed and which is not completed.
func IsOverdue(t task.Task, today calendar.Date) bool {
	return t.Deadline != nil && t.Deadline.Before(today) && t.Status != task.StatusCompleted
}

// Tasks counts tasks per status and the overdue ones as of today.
func Tasks(tasks []task.Task, today calendar.Date) task.Summary {
	s := task.Summary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case task.StatusPending:
			s.Pending++
		case task.StatusInProgress:
			s.InProgress++
		case task.StatusCompleted:
			s.Completed++
		}
		if IsOverdue(t, today) {
			s.Overdue++
		}
	}
	return s
}

// FinanceSeries lays the backend's (month, amount) pairs over the six calendar
// months ending with the month of today, oldest first. Pairs are matched by
// month number only; months without a pair are zero.
func FinanceSeries(salaryMonthly, advanceMonthly []payment.MonthAmount, today calendar.Date) []payment.MonthPoint {
	salary := byMonth(salaryMonthly)
	advance := byMonth(advanceMonthly)

	first := time.Date(today.Year, today.Month, 1, 0, 0, 0, 0, time.UTC)
	points := make([]payment.MonthPoint, 0, SeriesMonths)
	for i := SeriesMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		n := int(m.Month())
		points = append(points, payment.MonthPoint{
			Year:    m.Year(),
			Month:   n,
			Label:   m.Month().String()[:3],
			Salary:  amountOr0(salary, n),
			Advance: amountOr0(advance, n),
		})
	}
	return points
}

// byMonth sums amounts per month number.
func byMonth(pairs []payment.MonthAmount) map[int]decimal.Decimal {
	out := make(map[int]decimal.Decimal, len(pairs))
	for _, p := range pairs {
		out[p.Month] = amountOr0(out, p.Month).Add(p.Amount)
	}
	return out
}

func amountOr0(m map[int]decimal.Decimal, month int) decimal.Decimal {
	if v, ok := m[month]; ok {
		return v
	}
	return decimal.Zero
}
