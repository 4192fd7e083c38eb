// Package filter holds the list predicates of the panel pages, the
// duplicate-attendance guard and the deadline classifier.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sitemgmt/site-panel-go/internal/domain/attendance"
	"github.com/sitemgmt/site-panel-go/internal/domain/payment"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/task"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

// All disables a category dimension.
const All = "All"

var fold = cases.Fold()

// MatchText reports whether any field contains query, ignoring case.
// A blank query matches everything.
func MatchText(query string, fields ...string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	q = fold.String(q)
	for _, f := range fields {
		if strings.Contains(fold.String(f), q) {
			return true
		}
	}
	return false
}

// MatchCategory is equality unless selected is empty or All.
func MatchCategory(selected, value string) bool {
	return selected == "" || selected == All || selected == value
}

// MatchID is equality unless selected is zero.
func MatchID(selected, value int64) bool {
	return selected == 0 || selected == value
}

// Predicate decides whether an item stays in a list.
type Predicate[T any] func(T) bool

// Apply returns the items accepted by pred in their original order. The input is not modified.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred == nil || pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func Workers(query string) Predicate[worker.Worker] {
	return func(w worker.Worker) bool {
		return MatchText(query, w.Name)
	}
}

func Projects(f project.ProjectFilter) Predicate[project.Project] {
	return func(p project.Project) bool {
		return MatchCategory(f.Status, string(p.Status)) &&
			MatchText(f.Search, p.Name, p.Location, p.ManagerName)
	}
}

func Tasks(f task.TaskFilter) Predicate[task.Task] {
	return func(t task.Task) bool {
		return MatchID(f.WorkerID, t.Worker.RefID()) &&
			MatchID(f.ProjectID, t.Project.RefID()) &&
			MatchCategory(f.Status, string(t.Status)) &&
			MatchText(f.Search, t.TaskName, t.Description)
	}
}

func Payments(f payment.PaymentFilter) Predicate[payment.Payment] {
	return func(p payment.Payment) bool {
		return MatchID(f.WorkerID, p.WorkerID()) &&
			MatchCategory(f.Type, string(p.Type)) &&
			MatchText(f.Search, p.Note, p.Worker.RefName())
	}
}

// Attendance keeps records inside rng, bounds included.
func Attendance(rng calendar.Range) Predicate[attendance.Attendance] {
	return func(a attendance.Attendance) bool {
		return rng.Contains(a.Date)
	}
}

// DueOn keeps tasks whose deadline is exactly day.
func DueOn(day calendar.Date) Predicate[task.Task] {
	return func(t task.Task) bool {
		return t.Deadline != nil && *t.Deadline == day
	}
}
