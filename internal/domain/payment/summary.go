package payment

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// FinanceSummary is the backend's precomputed payment summary.
type FinanceSummary struct {
	TotalSalary    decimal.Decimal `json:"totalSalary"`
	TotalAdvance   decimal.Decimal `json:"totalAdvance"`
	Balance        decimal.Decimal `json:"balance"`
	SalaryMonthly  []MonthAmount   `json:"salaryMonthly"`
	AdvanceMonthly []MonthAmount   `json:"advanceMonthly"`
	TopPaidWorkers []TopPaid       `json:"topPaidWorkers"`
}

// Totals drops the series and keeps the balance figures.
func (s FinanceSummary) Totals() Totals {
	return Totals{
		TotalSalary:  s.TotalSalary,
		TotalAdvance: s.TotalAdvance,
		Balance:      s.Balance,
	}
}

// UnmarshalJSON reads the backend's [month, amount] tuple.
func (m *MonthAmount) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("month amount must be a [month, amount] pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("month amount must have 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &m.Month); err != nil {
		return fmt.Errorf("month: %w", err)
	}
	if err := json.Unmarshal(raw[1], &m.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	return nil
}

// UnmarshalJSON reads either the backend's [workerId, name, amount] tuple or
// the object form this service writes.
func (t *TopPaid) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		type plain TopPaid
		var p plain
		if objErr := json.Unmarshal(data, &p); objErr != nil {
			return fmt.Errorf("top paid worker: %w", err)
		}
		*t = TopPaid(p)
		return nil
	}
	if len(raw) != 3 {
		return fmt.Errorf("top paid worker must have 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.WorkerID); err != nil {
		return fmt.Errorf("workerId: %w", err)
	}
	if err := json.Unmarshal(raw[1], &t.WorkerName); err != nil {
		return fmt.Errorf("workerName: %w", err)
	}
	if err := json.Unmarshal(raw[2], &t.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	return nil
}
