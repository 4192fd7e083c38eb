package task

import (
	"strings"

	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// TaskFilter narrows the admin task list. Zero ids and an "All" status disable a dimension.
type TaskFilter struct {
	Search    string
	WorkerID  int64
	ProjectID int64
	Status    string
}

type TaskRequest struct {
	ID          int64          `json:"-"`
	TaskName    string         `json:"taskName" validate:"required"`
	Description string         `json:"description"`
	Status      Status         `json:"status"`
	Deadline    *calendar.Date `json:"deadline"`
	WorkerID    int64          `json:"workerId" validate:"required"`
	ProjectID   int64          `json:"projectId" validate:"required"`
}

func (r *TaskRequest) Validate() error {
	r.TaskName = strings.TrimSpace(r.TaskName)
	if r.Status == "" {
		r.Status = StatusPending
	}

	errs := validator.Struct(r)
	if !r.Status.Valid() {
		errs.Add("status", "must be one of: Pending, In Progress, Completed")
	}
	return errs.Err()
}

// ToTask builds the backend payload with id-only references.
func (r TaskRequest) ToTask() Task {
	return Task{
		ID:          r.ID,
		TaskName:    r.TaskName,
		Description: r.Description,
		Status:      r.Status,
		Deadline:    r.Deadline,
		Worker:      worker.RefTo(r.WorkerID),
		Project:     project.RefTo(r.ProjectID),
	}
}

type UpdateStatusRequest struct {
	ID     int64  `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Status.Valid() {
		errs.Add("status", "must be one of: Pending, In Progress, Completed")
	}
	return errs.Err()
}

type Summary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

// TaskView is a task with its deadline urgency for today.
type TaskView struct {
	Task
	DeadlineState DeadlineState `json:"deadlineState"`
}

type ListTaskResponse struct {
	Tasks   []TaskView `json:"tasks"`
	Total   int        `json:"total"`
	Summary Summary    `json:"summary"`
}

// Board is the worker's kanban, one column per status.
type Board struct {
	Pending    []TaskView `json:"pending"`
	InProgress []TaskView `json:"inProgress"`
	Completed  []TaskView `json:"completed"`
}

// CalendarDay is one cell of the month grid. Day zero is a leading blank.
type CalendarDay struct {
	Day   int `json:"day"`
	Tasks int `json:"tasks"`
}

type WorkerTaskResponse struct {
	Today        calendar.Date      `json:"today"`
	DueToday     []TaskView         `json:"dueToday"`
	Board        Board              `json:"board"`
	Summary      Summary            `json:"summary"`
	Month        calendar.MonthGrid `json:"month"`
	Calendar     []CalendarDay      `json:"calendar"`
	SelectedDate calendar.Date      `json:"selectedDate"`
	Selected     []TaskView         `json:"selected"`
}

// WorkerTaskQuery picks the calendar month and the selected day.
type WorkerTaskQuery struct {
	Year     int
	Month    int
	Selected *calendar.Date
}
