package filter

import (
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// DefaultDueSoonDays is the due-soon window: a deadline at most this many days
// after today is due soon.
const DefaultDueSoonDays = 3

// ClassifyDeadline grades a task's deadline relative to today. Completed
// tasks are always ok. A window below 1 falls back to DefaultDueSoonDays.
func ClassifyDeadline(t task.Task, today calendar.Date, window int) task.DeadlineState {
	if window < 1 {
		window = DefaultDueSoonDays
	}
	if t.Deadline == nil {
		return task.DeadlineNone
	}
	if t.Status == task.StatusCompleted {
		return task.DeadlineOK
	}
	days := today.DaysUntil(*t.Deadline)
	switch {
	case days < 0:
		return task.DeadlineOverdue
	case days <= window:
		return task.DeadlineDueSoon
	default:
		return task.DeadlineOK
	}
}

// View attaches the deadline state to each task.
func View(tasks []task.Task, today calendar.Date, window int) []task.TaskView {
	out := make([]task.TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = task.TaskView{Task: t, DeadlineState: ClassifyDeadline(t, today, window)}
	}
	return out
}
