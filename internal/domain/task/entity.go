package task

import (
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the task statuses in workflow order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) Valid() bool {
	return s.rank() >= 0
}

func (s Status) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	}
	return -1
}

// Advances reports whether moving from s to next goes forward in the workflow.
func (s Status) Advances(next Status) bool {
	return next.Valid() && s.rank() >= 0 && next.rank() > s.rank()
}

type Task struct {
	ID          int64          `json:"id"`
	TaskName    string         `json:"taskName"`
	Description string         `json:"description"`
	Status      Status         `json:"status"`
	Deadline    *calendar.Date `json:"deadline"`
	Worker      *worker.Ref    `json:"worker"`
	Project     *project.Ref   `json:"project"`
}

// DeadlineState is the urgency class shown next to a task.
type DeadlineState string

const (
	DeadlineNone    DeadlineState = "none"
	DeadlineOK      DeadlineState = "ok"
	DeadlineDueSoon DeadlineState = "due-soon"
	DeadlineOverdue DeadlineState = "overdue"
)
