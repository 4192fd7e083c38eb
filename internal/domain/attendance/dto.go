package attendance

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// MarkRequest marks one worker. Date defaults to today, Status to Present.
type MarkRequest struct {
	WorkerID      int64          `json:"workerId" validate:"required"`
	Date          *calendar.Date `json:"date"`
	Status        Status         `json:"status"`
	OvertimeHours float64        `json:"overtimeHours"`
}

func (r *MarkRequest) Validate() error {
	if r.Status == "" {
		r.Status = StatusPresent
	}
	errs := validator.Struct(r)
	validateEntry(&errs, "", r.Status, r.OvertimeHours)
	return errs.Err()
}

// BulkEntry is one row of the bulk-marking draft.
type BulkEntry struct {
	WorkerID      int64   `json:"workerId"`
	Status        Status  `json:"status"`
	OvertimeHours float64 `json:"overtimeHours"`
}

// BulkRequest marks several workers for one day. An empty Entries list means
// every known worker, Present, no overtime.
type BulkRequest struct {
	Date    *calendar.Date `json:"date"`
	Entries []BulkEntry    `json:"entries"`
}

func (r *BulkRequest) Validate() error {
	var errs validator.ValidationErrors
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Status == "" {
			e.Status = StatusPresent
		}
		prefix := "entries[" + strconv.Itoa(i) + "]."
		if e.WorkerID == 0 {
			errs.Add(prefix+"workerId", "is required")
		}
		validateEntry(&errs, prefix, e.Status, e.OvertimeHours)
	}
	return errs.Err()
}

// UpdateRequest edits status and overtime of an existing record.
type UpdateRequest struct {
	ID            int64   `json:"-"`
	Status        Status  `json:"status"`
	OvertimeHours float64 `json:"overtimeHours"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors
	validateEntry(&errs, "", r.Status, r.OvertimeHours)
	return errs.Err()
}

func validateEntry(errs *validator.ValidationErrors, prefix string, status Status, overtime float64) {
	if !status.Valid() {
		errs.Add(prefix+"status", "must be one of: Present Absent")
	}
	if overtime < 0 {
		errs.Add(prefix+"overtimeHours", "must be at least 0")
	}
}

type Summary struct {
	Present       int             `json:"present"`
	Absent        int             `json:"absent"`
	Total         int             `json:"total"`
	OvertimeHours float64         `json:"overtimeHours"`
	TotalPay      decimal.Decimal `json:"totalPay"`
}

// DraftRow is a bulk-marking row for a worker. Marked rows are already
// recorded for the day and are skipped on submit.
type DraftRow struct {
	WorkerID      int64   `json:"workerId"`
	WorkerName    string  `json:"workerName"`
	ProjectName   string  `json:"projectName"`
	Status        Status  `json:"status"`
	OvertimeHours float64 `json:"overtimeHours"`
	Marked        bool    `json:"marked"`
}

type ViewResponse struct {
	Range   calendar.Range `json:"range"`
	Records []Attendance   `json:"records"`
	Summary Summary        `json:"summary"`
	Draft   []DraftRow     `json:"draft"`
}

// WorkerViewResponse is the worker panel's attendance page. Summary counts
// every loaded record; Records honours the range.
type WorkerViewResponse struct {
	Range   calendar.Range `json:"range"`
	Records []Attendance   `json:"records"`
	Summary Summary        `json:"summary"`
	Today   *Attendance    `json:"today"`
}
