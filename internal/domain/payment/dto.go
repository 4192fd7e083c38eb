package payment

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// PaymentFilter narrows the payments list. A zero worker id or an "All" type disables a dimension.
type PaymentFilter struct {
	Search   string
	WorkerID int64
	Type     string
}

// PaymentRequest is also the backend's flat add payload.
type PaymentRequest struct {
	WorkerID int64           `json:"workerId" validate:"required"`
	Type     Type            `json:"type" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

func (r *PaymentRequest) Validate() error {
	r.Note = strings.TrimSpace(r.Note)

	errs := validator.Struct(r)
	if r.Type != "" && !r.Type.Valid() {
		errs.Add("type", "must be one of: Salary Advance")
	}
	if !r.Amount.IsPositive() {
		errs.Add("amount", "must be greater than 0")
	}
	return errs.Err()
}

// Totals is the payroll balance over a set of payments.
type Totals struct {
	TotalSalary  decimal.Decimal `json:"totalSalary"`
	TotalAdvance decimal.Decimal `json:"totalAdvance"`
	Balance      decimal.Decimal `json:"balance"`
}

// WorkerTotals is one row of the payroll-by-worker table.
type WorkerTotals struct {
	WorkerID   int64  `json:"workerId"`
	WorkerName string `json:"workerName"`
	Totals
}

// MonthPoint is one month of the salary/advance chart.
type MonthPoint struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Label   string          `json:"label"`
	Salary  decimal.Decimal `json:"salary"`
	Advance decimal.Decimal `json:"advance"`
}

// MonthAmount is a (month number, amount) pair as the backend reports it.
type MonthAmount struct {
	Month  int
	Amount decimal.Decimal
}

// TopPaid is a worker ranked by total salary.
type TopPaid struct {
	WorkerID   int64           `json:"workerId"`
	WorkerName string          `json:"workerName"`
	Amount     decimal.Decimal `json:"amount"`
}

type ListPaymentResponse struct {
	Payments []Payment      `json:"payments"`
	Total    int            `json:"total"`
	Totals   Totals         `json:"totals"`
	ByWorker []WorkerTotals `json:"byWorker"`
	Series   []MonthPoint   `json:"series"`
	TopPaid  []TopPaid      `json:"topPaid"`
}

type WorkerPaymentResponse struct {
	Payments []Payment     `json:"payments"`
	Totals   Totals        `json:"totals"`
	Today    calendar.Date `json:"today"`
}
