package dashboard

import (
	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// Summary is the backend's /api/dashboard/summary payload.
type Summary struct {
	TotalWorkers           int64         `json:"totalWorkers"`
	TotalProjects          int64         `json:"totalProjects"`
	ActiveProjects         int64         `json:"activeProjects"`
	CompletedProjects      int64         `json:"completedProjects"`
	PendingProjects        int64         `json:"pendingProjects"`
	TotalAttendanceRecords int64         `json:"totalAttendanceRecords"`
	TotalOvertimeHours     float64       `json:"totalOvertimeHours"`
	AverageDailyAttendance float64       `json:"averageDailyAttendance"`
	WeeklyAttendance       []WeeklyPoint `json:"weeklyAttendance"`
	payment.FinanceSummary
}

// WeeklyPoint is one day of the trailing seven-day attendance chart.
type WeeklyPoint struct {
	Day        string  `json:"day"`
	Attendance float64 `json:"attendance"`
}

// Slice is one segment of the project progress pie.
type Slice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// AdminDashboardResponse combines the backend summary with figures computed
// from the session's own task and payment data.
type AdminDashboardResponse struct {
	TotalWorkers           int64                `json:"totalWorkers"`
	TotalProjects          int64                `json:"totalProjects"`
	ActiveProjects         int64                `json:"activeProjects"`
	CompletedProjects      int64                `json:"completedProjects"`
	PendingProjects        int64                `json:"pendingProjects"`
	TotalAttendanceRecords int64                `json:"totalAttendanceRecords"`
	TotalOvertimeHours     float64              `json:"totalOvertimeHours"`
	AverageDailyAttendance float64              `json:"averageDailyAttendance"`
	ProjectProgress        []Slice              `json:"projectProgress"`
	WeeklyAttendance       []WeeklyPoint        `json:"weeklyAttendance"`
	Tasks                  task.Summary         `json:"tasks"`
	Finance                payment.Totals       `json:"finance"`
	Series                 []payment.MonthPoint `json:"series"`
	TopPaid                []payment.TopPaid    `json:"topPaid"`
	Today                  calendar.Date        `json:"today"`
}

// WorkerDashboardResponse is the worker panel landing page.
type WorkerDashboardResponse struct {
	Profile         session.Profile        `json:"profile"`
	Today           calendar.Date          `json:"today"`
	TodayAttendance *attendance.Attendance `json:"todayAttendance"`
	TodayStatus     string                 `json:"todayStatus"`
	Attendance      attendance.Summary     `json:"attendance"`
	Tasks           task.Summary           `json:"tasks"`
	DueToday        []task.Task            `json:"dueToday"`
	Payments        payment.Totals         `json:"payments"`
	RecentPayments  []payment.Payment      `json:"recentPayments"`
}

// NotMarked is shown when the worker has no record for today.
const NotMarked = "Not marked"
