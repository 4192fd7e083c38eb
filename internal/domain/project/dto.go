package project

import (
	"strings"

	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

type ProjectFilter struct {
	Search string
	Status string // "All" or empty disables
}

type ProjectRequest struct {
	ID          int64          `json:"-"`
	Name        string         `json:"name" validate:"required"`
	Location    string         `json:"location" validate:"required"`
	StartDate   *calendar.Date `json:"startDate"`
	EndDate     *calendar.Date `json:"endDate"`
	ManagerName string         `json:"managerName" validate:"required"`
	Status      Status         `json:"status"`
	Description string         `json:"description"`
}

func (r *ProjectRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.ManagerName = strings.TrimSpace(r.ManagerName)

	errs := validator.Struct(r)
	if r.Status == "" {
		r.Status = StatusActive
	}
	if !r.Status.Valid() {
		errs.Add("status", "must be one of: Active Pending Completed")
	}
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		errs.Add("endDate", "must not be before startDate")
	}
	return errs.Err()
}

func (r ProjectRequest) ToProject() Project {
	return Project{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ManagerName: r.ManagerName,
		Status:      r.Status,
		Description: r.Description,
	}
}

type UpdateStatusRequest struct {
	ID     int64  `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Status.Valid() {
		errs.Add("status", "must be one of: Active Pending Completed")
	}
	return errs.Err()
}

type StatusCounts struct {
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type ListProjectResponse struct {
	Projects []Project    `json:"projects"`
	Total    int          `json:"total"`
	Counts   StatusCounts `json:"counts"`
}
