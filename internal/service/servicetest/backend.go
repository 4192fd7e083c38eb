package servicetest

import (
	"context"
	"slices"
	"sync"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/dashboard"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// Calls counts backend calls by name.
type Calls struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *Calls) hit(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = make(map[string]int)
	}
	c.n[name]++
}

func (c *Calls) Count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[name]
}

// Total is the number of calls of any kind.
func (c *Calls) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, v := range c.n {
		total += v
	}
	return total
}

// Workers is an in-memory worker resource. Err, when set, fails every call.
type Workers struct {
	Calls
	mu     sync.Mutex
	Data   []worker.Worker
	Err    error
	nextID int64
}

func (f *Workers) List(context.Context) ([]worker.Worker, error) {
	f.hit("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return slices.Clone(f.Data), nil
}

func (f *Workers) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.hit("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return worker.Worker{}, f.Err
	}
	f.nextID++
	w.ID = 1000 + f.nextID
	f.Data = append(f.Data, w)
	return w, nil
}

func (f *Workers) Update(_ context.Context, w worker.Worker) (worker.Worker, error) {
	f.hit("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return worker.Worker{}, f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == w.ID {
			f.Data[i] = w
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (f *Workers) Delete(_ context.Context, id int64) error {
	f.hit("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Data = slices.DeleteFunc(f.Data, func(w worker.Worker) bool { return w.ID == id })
	return nil
}

type Projects struct {
	Calls
	mu     sync.Mutex
	Data   []project.Project
	Err    error
	nextID int64
}

func (f *Projects) List(context.Context) ([]project.Project, error) {
	f.hit("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return slices.Clone(f.Data), nil
}

func (f *Projects) Create(_ context.Context, p project.Project) (project.Project, error) {
	f.hit("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return project.Project{}, f.Err
	}
	f.nextID++
	p.ID = 1000 + f.nextID
	f.Data = append(f.Data, p)
	return p, nil
}

func (f *Projects) Update(_ context.Context, p project.Project) (project.Project, error) {
	f.hit("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return project.Project{}, f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == p.ID {
			f.Data[i] = p
			return p, nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (f *Projects) UpdateStatus(_ context.Context, id int64, status project.Status) (project.Project, error) {
	f.hit("status")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return project.Project{}, f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == id {
			f.Data[i].Status = status
			return f.Data[i], nil
		}
	}
	return project.Project{}, project.ErrProjectNotFound
}

func (f *Projects) Delete(_ context.Context, id int64) error {
	f.hit("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Data = slices.DeleteFunc(f.Data, func(p project.Project) bool { return p.ID == id })
	return nil
}

// Attendance filters by range only when both bounds are set, like the backend.
type Attendance struct {
	Calls
	mu      sync.Mutex
	Data    []attendance.Attendance
	Err     error
	Created [][]attendance.Attendance
	nextID  int64
}

func (f *Attendance) filter(workerID int64, rng calendar.Range) []attendance.Attendance {
	out := []attendance.Attendance{}
	for _, a := range f.Data {
		if workerID != 0 && a.WorkerID() != workerID {
			continue
		}
		if rng.Bounded() && !rng.Contains(a.Date) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (f *Attendance) List(_ context.Context, rng calendar.Range) ([]attendance.Attendance, error) {
	f.hit("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.filter(0, rng), nil
}

func (f *Attendance) ListByWorker(_ context.Context, workerID int64, rng calendar.Range) ([]attendance.Attendance, error) {
	f.hit("listByWorker")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.filter(workerID, rng), nil
}

func (f *Attendance) add(a attendance.Attendance) attendance.Attendance {
	f.nextID++
	a.ID = 1000 + f.nextID
	f.Data = append(f.Data, a)
	return a
}

func (f *Attendance) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.hit("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return attendance.Attendance{}, f.Err
	}
	f.Created = append(f.Created, []attendance.Attendance{a})
	return f.add(a), nil
}

func (f *Attendance) CreateBulk(_ context.Context, records []attendance.Attendance) ([]attendance.Attendance, error) {
	f.hit("bulk")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	f.Created = append(f.Created, slices.Clone(records))
	out := make([]attendance.Attendance, len(records))
	for i, a := range records {
		out[i] = f.add(a)
	}
	return out, nil
}

func (f *Attendance) Update(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.hit("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return attendance.Attendance{}, f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == a.ID {
			f.Data[i] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *Attendance) Delete(_ context.Context, id int64) error {
	f.hit("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Data = slices.DeleteFunc(f.Data, func(a attendance.Attendance) bool { return a.ID == id })
	return nil
}

type Tasks struct {
	Calls
	mu     sync.Mutex
	Data   []task.Task
	Err    error
	nextID int64
}

func (f *Tasks) List(context.Context) ([]task.Task, error) {
	f.hit("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return slices.Clone(f.Data), nil
}

func (f *Tasks) ListByWorker(_ context.Context, workerID int64) ([]task.Task, error) {
	f.hit("listByWorker")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []task.Task{}
	for _, t := range f.Data {
		if t.Worker.RefID() == workerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *Tasks) Create(_ context.Context, t task.Task) (task.Task, error) {
	f.hit("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return task.Task{}, f.Err
	}
	f.nextID++
	t.ID = 1000 + f.nextID
	f.Data = append(f.Data, t)
	return t, nil
}

func (f *Tasks) Update(_ context.Context, t task.Task) (task.Task, error) {
	f.hit("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return task.Task{}, f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == t.ID {
			f.Data[i] = t
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *Tasks) UpdateStatus(_ context.Context, id int64, status task.Status) error {
	f.hit("status")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Data {
		if f.Data[i].ID == id {
			f.Data[i].Status = status
			return nil
		}
	}
	return task.ErrTaskNotFound
}

func (f *Tasks) Delete(_ context.Context, id int64) error {
	f.hit("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Data = slices.DeleteFunc(f.Data, func(t task.Task) bool { return t.ID == id })
	return nil
}

type Payments struct {
	Calls
	mu         sync.Mutex
	Data       []payment.Payment
	Finance    payment.FinanceSummary
	Err        error
	SummaryErr error
	Today      calendar.Date
	nextID     int64
}

func (f *Payments) List(context.Context) ([]payment.Payment, error) {
	f.hit("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return slices.Clone(f.Data), nil
}

func (f *Payments) ListByWorker(_ context.Context, workerID int64) ([]payment.Payment, error) {
	f.hit("listByWorker")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []payment.Payment{}
	for _, p := range f.Data {
		if p.WorkerID() == workerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *Payments) Add(_ context.Context, req payment.PaymentRequest) (payment.Payment, error) {
	f.hit("add")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return payment.Payment{}, f.Err
	}
	f.nextID++
	day := f.Today
	p := payment.Payment{
		ID:     1000 + f.nextID,
		Worker: worker.RefTo(req.WorkerID),
		Type:   req.Type,
		Amount: req.Amount,
		Date:   &day,
		Note:   req.Note,
	}
	f.Data = append(f.Data, p)
	return p, nil
}

func (f *Payments) Delete(_ context.Context, id int64) error {
	f.hit("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Data = slices.DeleteFunc(f.Data, func(p payment.Payment) bool { return p.ID == id })
	return nil
}

func (f *Payments) Summary(context.Context) (payment.FinanceSummary, error) {
	f.hit("summary")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SummaryErr != nil {
		return payment.FinanceSummary{}, f.SummaryErr
	}
	return f.Finance, nil
}

func (f *Payments) AutoSalaryAll(context.Context) error {
	f.hit("autoSalary")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Err
}

type Dashboard struct {
	Calls
	Data dashboard.Summary
	Err  error
}

func (f *Dashboard) Summary(context.Context) (dashboard.Summary, error) {
	f.hit("summary")
	if f.Err != nil {
		return dashboard.Summary{}, f.Err
	}
	return f.Data, nil
}

// Auth accepts AdminPassword for the admin and Workers' passwords by phone.
type Auth struct {
	Calls
	mu             sync.Mutex
	AdminPassword  string
	Workers        map[string]auth.WorkerLoginResult
	Passwords      map[string]string
	Err            error
	Changed        []auth.ChangePasswordPayload
	ResetWorkerIDs []int64
}

func (f *Auth) AdminLogin(_ context.Context, req auth.LoginRequest) error {
	f.hit("adminLogin")
	if f.Err != nil {
		return f.Err
	}
	if req.Password != f.AdminPassword {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func (f *Auth) WorkerLogin(_ context.Context, req auth.LoginRequest) (auth.WorkerLoginResult, error) {
	f.hit("workerLogin")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return auth.WorkerLoginResult{}, f.Err
	}
	res, ok := f.Workers[req.Phone]
	if !ok || f.Passwords[req.Phone] != req.Password {
		return auth.WorkerLoginResult{}, auth.ErrInvalidCredentials
	}
	return res, nil
}

func (f *Auth) ChangePassword(_ context.Context, p auth.ChangePasswordPayload) error {
	f.hit("changePassword")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Changed = append(f.Changed, p)
	return nil
}

func (f *Auth) ResetWorkerPassword(_ context.Context, workerID int64) error {
	f.hit("resetPassword")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.ResetWorkerIDs = append(f.ResetWorkerIDs, workerID)
	return nil
}
