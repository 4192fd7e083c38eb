package worker

import (
	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/domain/project"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type Worker struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	RatePerDay     decimal.Decimal `json:"ratePerDay"`
	Address        string          `json:"address"`
	AadhaarNumber  string          `json:"aadhaarNumber"`
	Role           string          `json:"role"`
	JoinedDate     *calendar.Date  `json:"joinedDate"`
	PoliceVerified bool            `json:"policeVerified"`
	Project        *project.Ref    `json:"project"`
}

// Ref is a worker association. Outbound payloads carry only the id.
type Ref struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
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

// RefName returns the referenced worker's name or "".
func (r *Ref) RefName() string {
	if r == nil {
		return ""
	}
	return r.Name
}
