package task

import (
	"context"
	"fmt"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/service/aggregate"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/service/filter"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

type TaskServiceImpl struct {
	taskRepo   task.TaskRepository
	stores     *store.Registry
	coord      *coordinator.Coordinator
	clock      calendar.Clock
	dueSoonDay int
}

func NewTaskService(
	taskRepo task.TaskRepository,
	stores *store.Registry,
	coord *coordinator.Coordinator,
	clock calendar.Clock,
	dueSoonDays int,
) task.TaskService {
	return &TaskServiceImpl{
		taskRepo:   taskRepo,
		stores:     stores,
		coord:      coord,
		clock:      clock,
		dueSoonDay: dueSoonDays,
	}
}

func (s *TaskServiceImpl) List(ctx context.Context, sess *session.Session, f task.TaskFilter) (*task.ListTaskResponse, error) {
	if err := s.coord.Refresh(ctx, sess, "tasks.list", "Failed to load tasks", s.fetch(sess)); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return s.Cached(sess, f), nil
}

// Cached summarises every loaded task; only the list is filtered.
func (s *TaskServiceImpl) Cached(sess *session.Session, f task.TaskFilter) *task.ListTaskResponse {
	today := s.clock.Today()
	all := s.stores.For(sess.Key()).Tasks()
	views := filter.View(filter.Apply(all, filter.Tasks(f)), today, s.dueSoonDay)
	return &task.ListTaskResponse{
		Tasks:   views,
		Total:   len(views),
		Summary: aggregate.Tasks(all, today),
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, sess *session.Session, req task.TaskRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name:     "tasks.create",
		Validate: req.Validate,
		Call: func(ctx context.Context) error {
			_, err := s.taskRepo.Create(ctx, req.ToTask())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Adding task...",
		Success:        "Task added",
		Failure:        "Failed to save task",
		RefreshFailure: "Failed to load tasks",
	})
}

func (s *TaskServiceImpl) Update(ctx context.Context, sess *session.Session, req task.TaskRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "tasks.update",
		Validate: func() error {
			if req.ID == 0 {
				return task.ErrTaskNotFound
			}
			return req.Validate()
		},
		Call: func(ctx context.Context) error {
			_, err := s.taskRepo.Update(ctx, req.ToTask())
			return err
		},
		Refresh:        s.fetch(sess),
		Loading:        "Updating task...",
		Success:        "Task updated",
		Failure:        "Failed to save task",
		RefreshFailure: "Failed to load tasks",
	})
}

func (s *TaskServiceImpl) Delete(ctx context.Context, sess *session.Session, id int64) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "tasks.delete",
		Call: func(ctx context.Context) error {
			return s.taskRepo.Delete(ctx, id)
		},
		Refresh:        s.fetch(sess),
		Loading:        "Deleting task...",
		Success:        "Task deleted",
		Failure:        "Failed to delete task",
		RefreshFailure: "Failed to load tasks",
	})
}

func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, sess *session.Session, req task.UpdateStatusRequest) (notification.Notice, error) {
	return s.coord.Run(ctx, sess, coordinator.Op{
		Name: "tasks.status",
		Validate: func() error {
			if err := req.Validate(); err != nil {
				return err
			}
			if sess.IsWorker() {
				return s.checkWorkerTransition(sess, req)
			}
			return nil
		},
		Call: func(ctx context.Context) error {
			return s.taskRepo.UpdateStatus(ctx, req.ID, req.Status)
		},
		Refresh:        s.fetch(sess),
		Loading:        "Updating status...",
		Success:        "Status updated",
		Failure:        "Failed to update status",
		RefreshFailure: "Failed to load tasks",
	})
}

// checkWorkerTransition allows a worker to move a loaded task of their own forward.
func (s *TaskServiceImpl) checkWorkerTransition(sess *session.Session, req task.UpdateStatusRequest) error {
	t, ok := s.stores.For(sess.Key()).Task(req.ID)
	if !ok {
		return task.ErrTaskNotFound
	}
	if t.Worker.RefID() != sess.WorkerID() {
		return task.ErrNotOwnTask
	}
	if !t.Status.Advances(req.Status) {
		return task.ErrBackwardStatus
	}
	return nil
}

func (s *TaskServiceImpl) Mine(ctx context.Context, sess *session.Session, q task.WorkerTaskQuery) (*task.WorkerTaskResponse, error) {
	if !sess.IsWorker() {
		return nil, session.ErrWorkerRequired
	}
	if err := s.coord.Refresh(ctx, sess, "tasks.mine", "Failed to load tasks", s.fetch(sess)); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return s.CachedMine(sess, q), nil
}

// CachedMine lays the worker's tasks out as a board and a month calendar.
// The month defaults to the current one and the selected day to today.
func (s *TaskServiceImpl) CachedMine(sess *session.Session, q task.WorkerTaskQuery) *task.WorkerTaskResponse {
	today := s.clock.Today()
	all := s.stores.For(sess.Key()).Tasks()
	views := filter.View(all, today, s.dueSoonDay)

	year, month := today.Year, today.Month
	if q.Year > 0 && q.Month >= 1 && q.Month <= 12 {
		year, month = q.Year, time.Month(q.Month)
	}
	selected := today
	if q.Selected != nil {
		selected = *q.Selected
	}

	resp := &task.WorkerTaskResponse{
		Today:        today,
		DueToday:     s.dueOn(all, today, today),
		Board:        task.Board{Pending: []task.TaskView{}, InProgress: []task.TaskView{}, Completed: []task.TaskView{}},
		Summary:      aggregate.Tasks(all, today),
		Month:        calendar.NewMonthGrid(year, month),
		SelectedDate: selected,
		Selected:     s.dueOn(all, selected, today),
	}
	for _, v := range views {
		switch v.Status {
		case task.StatusPending:
			resp.Board.Pending = append(resp.Board.Pending, v)
		case task.StatusInProgress:
			resp.Board.InProgress = append(resp.Board.InProgress, v)
		case task.StatusCompleted:
			resp.Board.Completed = append(resp.Board.Completed, v)
		}
	}

	perDay := make(map[int]int)
	for _, t := range all {
		if d := t.Deadline; d != nil && d.Year == year && d.Month == month {
			perDay[d.Day]++
		}
	}
	resp.Calendar = make([]task.CalendarDay, len(resp.Month.Cells))
	for i, day := range resp.Month.Cells {
		resp.Calendar[i] = task.CalendarDay{Day: day, Tasks: perDay[day]}
	}
	return resp
}

// fetch reloads all tasks for an admin and the worker's own for a worker.
func (s *TaskServiceImpl) fetch(sess *session.Session) func(context.Context) error {
	st := s.stores.For(sess.Key())
	list := s.taskRepo.List
	if sess.IsWorker() {
		workerID := sess.WorkerID()
		list = func(ctx context.Context) ([]task.Task, error) {
			return s.taskRepo.ListByWorker(ctx, workerID)
		}
	}
	return func(ctx context.Context) error {
		return store.Fetch(ctx, st, store.SliceTasks, list, st.CommitTasks)
	}
}

func (s *TaskServiceImpl) dueOn(tasks []task.Task, day, today calendar.Date) []task.TaskView {
	return filter.View(filter.Apply(tasks, filter.DueOn(day)), today, s.dueSoonDay)
}
