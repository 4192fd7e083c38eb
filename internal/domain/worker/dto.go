package worker

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

type WorkerRequest struct {
	ID             int64           `json:"-"`
	Name           string          `json:"name" validate:"required"`
	Phone          string          `json:"phone" validate:"required"`
	RatePerDay     decimal.Decimal `json:"ratePerDay"`
	Address        string          `json:"address"`
	AadhaarNumber  string          `json:"aadhaarNumber"`
	Role           string          `json:"role"`
	JoinedDate     *calendar.Date  `json:"joinedDate"`
	PoliceVerified bool            `json:"policeVerified"`
	ProjectID      int64           `json:"projectId"`
}

func (r *WorkerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.AadhaarNumber = strings.TrimSpace(r.AadhaarNumber)

	errs := validator.Struct(r)
	if !r.RatePerDay.IsPositive() {
		errs.Add("ratePerDay", "must be greater than 0")
	}
	return errs.Err()
}

// ToWorker builds the backend payload.
func (r WorkerRequest) ToWorker() Worker {
	return Worker{
		ID:             r.ID,
		Name:           r.Name,
		Phone:          r.Phone,
		RatePerDay:     r.RatePerDay,
		Address:        r.Address,
		AadhaarNumber:  r.AadhaarNumber,
		Role:           r.Role,
		JoinedDate:     r.JoinedDate,
		PoliceVerified: r.PoliceVerified,
		Project:        project.RefTo(r.ProjectID),
	}
}

type ListWorkerResponse struct {
	Workers []Worker `json:"workers"`
	Total   int      `json:"total"`
}
