package filter

import (
	"testing"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(s string) *calendar.Date {
	d := calendar.MustParse(s)
	return &d
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"prefix any case", "rav", []string{"Ravi Kumar"}, true},
		{"upper query", "KUMAR", []string{"Ravi Kumar"}, true},
		{"second field", "pune", []string{"Tower A", "Pune"}, true},
		{"no match", "zoya", []string{"Ravi"}, false},
		{"blank query", "   ", []string{"anything"}, true},
		{"empty query no fields", "", nil, true},
		{"unicode folding", "ÉCOLE", []string{"petite école"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchText(tt.query, tt.fields...))
		})
	}
}

func TestMatchCategory(t *testing.T) {
	assert.True(t, MatchCategory(All, "Pending"))
	assert.True(t, MatchCategory("", "Pending"))
	assert.True(t, MatchCategory("Pending", "Pending"))
	assert.False(t, MatchCategory("Completed", "Pending"))
}

func TestWorkers_FindsByPartialName(t *testing.T) {
	workers := []worker.Worker{{ID: 1, Name: "Ravi"}, {ID: 2, Name: "Asha"}, {ID: 3, Name: "Pravin"}}

	got := Apply(workers, Workers("rav"))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestApply_IdempotentAndStable(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, TaskName: "Pour slab", Status: task.StatusPending, Worker: &worker.Ref{ID: 5}},
		{ID: 2, TaskName: "Paint", Status: task.StatusCompleted, Worker: &worker.Ref{ID: 5}},
		{ID: 3, TaskName: "Slab curing", Status: task.StatusPending, Worker: &worker.Ref{ID: 6}},
		{ID: 4, TaskName: "Rebar", Description: "slab reinforcement", Status: task.StatusPending, Worker: &worker.Ref{ID: 5}},
	}
	pred := Tasks(task.TaskFilter{Search: "slab", WorkerID: 5, Status: "Pending"})

	once := Apply(tasks, pred)
	twice := Apply(once, pred)
	assert.Equal(t, once, twice)
	require.Len(t, once, 2)
	assert.Equal(t, int64(1), once[0].ID)
	assert.Equal(t, int64(4), once[1].ID)
	assert.Len(t, tasks, 4)
}

func TestProjects(t *testing.T) {
	projects := []project.Project{
		{ID: 1, Name: "Tower A", Location: "Pune", ManagerName: "Mehta", Status: project.StatusActive},
		{ID: 2, Name: "Bridge", Location: "Nashik", ManagerName: "Rao", Status: project.StatusCompleted},
	}
	assert.Len(t, Apply(projects, Projects(project.ProjectFilter{Status: All})), 2)
	assert.Len(t, Apply(projects, Projects(project.ProjectFilter{Search: "rao"})), 1)
	assert.Empty(t, Apply(projects, Projects(project.ProjectFilter{Search: "pune", Status: "Completed"})))
}

func TestPayments(t *testing.T) {
	payments := []payment.Payment{
		{ID: 1, Worker: &worker.Ref{ID: 5, Name: "Ravi"}, Type: payment.TypeSalary, Note: "May"},
		{ID: 2, Worker: &worker.Ref{ID: 6, Name: "Asha"}, Type: payment.TypeAdvance, Note: "festival"},
		{ID: 3, Type: payment.TypeAdvance},
	}
	assert.Len(t, Apply(payments, Payments(payment.PaymentFilter{Type: "Advance"})), 2)
	assert.Len(t, Apply(payments, Payments(payment.PaymentFilter{Search: "asha"})), 1)
	assert.Len(t, Apply(payments, Payments(payment.PaymentFilter{WorkerID: 5, Type: All})), 1)
}

func TestAttendanceRange(t *testing.T) {
	records := []attendance.Attendance{
		{ID: 1, Date: calendar.MustParse("2024-04-30")},
		{ID: 2, Date: calendar.MustParse("2024-05-01")},
		{ID: 3, Date: calendar.MustParse("2024-05-31")},
		{ID: 4, Date: calendar.MustParse("2024-06-01")},
	}
	rng := calendar.Range{From: datePtr("2024-05-01"), To: datePtr("2024-05-31")}
	got := Apply(records, Attendance(rng))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Len(t, Apply(records, Attendance(calendar.Range{From: datePtr("2024-05-31")})), 2)
}

func TestAttendanceGuard(t *testing.T) {
	day := calendar.MustParse("2024-05-01")
	loaded := []attendance.Attendance{
		{Worker: &worker.Ref{ID: 5}, Date: day, Status: attendance.StatusPresent},
	}
	g := NewAttendanceGuard(loaded)

	assert.ErrorIs(t, g.Check(5, day), attendance.ErrAttendanceAlreadyMarked)
	assert.NoError(t, g.Check(5, day.AddDays(1)))
	assert.NoError(t, g.Check(6, day))

	pending := g.Pending(day, []attendance.BulkEntry{
		{WorkerID: 5, Status: attendance.StatusPresent},
		{WorkerID: 6, Status: attendance.StatusPresent},
		{WorkerID: 6, Status: attendance.StatusAbsent},
		{WorkerID: 7, Status: attendance.StatusAbsent},
	})
	require.Len(t, pending, 2)
	assert.Equal(t, int64(6), pending[0].WorkerID)
	assert.Equal(t, attendance.StatusPresent, pending[0].Status)
	assert.Equal(t, int64(7), pending[1].WorkerID)

	assert.Empty(t, g.Pending(day, []attendance.BulkEntry{{WorkerID: 5}}))
}

func TestClassifyDeadline(t *testing.T) {
	today := calendar.MustParse("2024-06-10")
	tests := []struct {
		name     string
		deadline *calendar.Date
		status   task.Status
		want     task.DeadlineState
	}{
		{"no deadline", nil, task.StatusPending, task.DeadlineNone},
		{"yesterday", datePtr("2024-06-09"), task.StatusPending, task.DeadlineOverdue},
		{"today", datePtr("2024-06-10"), task.StatusPending, task.DeadlineDueSoon},
		{"in two days", datePtr("2024-06-12"), task.StatusInProgress, task.DeadlineDueSoon},
		{"in three days", datePtr("2024-06-13"), task.StatusPending, task.DeadlineDueSoon},
		{"in four days", datePtr("2024-06-14"), task.StatusPending, task.DeadlineOK},
		{"far away", datePtr("2024-06-20"), task.StatusPending, task.DeadlineOK},
		{"completed overdue", datePtr("2024-06-01"), task.StatusCompleted, task.DeadlineOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := task.Task{Deadline: tt.deadline, Status: tt.status}
			assert.Equal(t, tt.want, ClassifyDeadline(tk, today, DefaultDueSoonDays))
		})
	}
}

func TestClassifyDeadline_Window(t *testing.T) {
	today := calendar.MustParse("2024-06-10")
	tk := task.Task{Deadline: datePtr("2024-06-15"), Status: task.StatusPending}
	assert.Equal(t, task.DeadlineOK, ClassifyDeadline(tk, today, 0))
	assert.Equal(t, task.DeadlineOK, ClassifyDeadline(tk, today, 4))
	assert.Equal(t, task.DeadlineDueSoon, ClassifyDeadline(tk, today, 5))
	assert.Equal(t, task.DeadlineDueSoon, ClassifyDeadline(tk, today, 7))

	tomorrow := task.Task{Deadline: datePtr("2024-06-11"), Status: task.StatusPending}
	assert.Equal(t, task.DeadlineDueSoon, ClassifyDeadline(tomorrow, today, 1))
}

func TestDueOn(t *testing.T) {
	day := calendar.MustParse("2024-06-10")
	tasks := []task.Task{{ID: 1, Deadline: datePtr("2024-06-10")}, {ID: 2, Deadline: datePtr("2024-06-11")}, {ID: 3}}
	got := Apply(tasks, DueOn(day))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
