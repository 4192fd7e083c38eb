package payment

import (
	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type Type string

const (
	TypeSalary  Type = "Salary"
	TypeAdvance Type = "Advance"
)

func (t Type) Valid() bool {
	return t == TypeSalary || t == TypeAdvance
}

// Payment is a salary or advance paid to a worker. The backend stamps Date.
type Payment struct {
	ID     int64           `json:"id"`
	Worker *worker.Ref     `json:"worker"`
	Type   Type            `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   *calendar.Date  `json:"date"`
	Note   string          `json:"note"`
}

func (p Payment) WorkerID() int64 {
	return p.Worker.RefID()
}
