package project

import "github.com/sitemgmt/site-panel-go/internal/pkg/calendar"

type Status string

const (
	StatusActive    Status = "Active"
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// Statuses lists the project statuses in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusPending, StatusCompleted}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	StartDate   *calendar.Date `json:"startDate"`
	EndDate     *calendar.Date `json:"endDate"`
	ManagerName string         `json:"managerName"`
	Status      Status         `json:"status"`
	Description string         `json:"description"`
}

// Ref is a project association. Outbound payloads carry only the id.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// RefTo builds an id-only reference, nil when id is zero.
func RefTo(id int64) *Ref {
	if id == 0 {
		return nil
	}
	return &Ref{ID: id}
}

// RefID returns the referenced id or zero.
func (r *Ref) RefID() int64 {
	if r == nil {
		return 0
	}
	return r.ID
}
