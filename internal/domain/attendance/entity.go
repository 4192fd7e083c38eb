package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is one worker's record for one day. TotalPay is computed by the backend.
type Attendance struct {
	ID            int64           `json:"id"`
	Worker        *worker.Ref     `json:"worker"`
	Project       *project.Ref    `json:"project"`
	Date          calendar.Date   `json:"date"`
	Status        Status          `json:"status"`
	OvertimeHours float64         `json:"overtimeHours"`
	TotalPay      decimal.Decimal `json:"totalPay"`
}

// WorkerID returns the id of the referenced worker or zero.
func (a Attendance) WorkerID() int64 {
	return a.Worker.RefID()
}
