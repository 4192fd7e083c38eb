package session

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sitemgmt/site-panel-go/internal/pkg/calendar"
)

type Kind string

const (
	KindAdmin  Kind = "admin"
	KindWorker Kind = "worker"
)

// Session is the explicit per-browser session handed to every service call.
// It is created at login, mutated by a password change and destroyed at logout.
type Session struct {
	Kind              Kind
	Worker            *Profile
	MustResetPassword bool
}

// Profile is the worker snapshot taken at login.
type Profile struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	RatePerDay     decimal.Decimal `json:"ratePerDay"`
	Address        string          `json:"address"`
	AadhaarNumber  string          `json:"aadhaarNumber"`
	Role           string          `json:"role"`
	JoinedDate     *calendar.Date  `json:"joinedDate"`
	PoliceVerified bool            `json:"policeVerified"`
	Project        *ProjectRef     `json:"project,omitempty"`
}

type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

func NewAdmin() *Session {
	return &Session{Kind: KindAdmin}
}

func NewWorker(p Profile, mustResetPassword bool) *Session {
	return &Session{Kind: KindWorker, Worker: &p, MustResetPassword: mustResetPassword}
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Kind == KindAdmin
}

func (s *Session) IsWorker() bool {
	return s != nil && s.Kind == KindWorker && s.Worker != nil
}

// WorkerID returns the logged-in worker's id, zero for admin sessions.
func (s *Session) WorkerID() int64 {
	if !s.IsWorker() {
		return 0
	}
	return s.Worker.ID
}

// Key identifies the session's record store and notice stream.
func (s *Session) Key() string {
	switch {
	case s.IsAdmin():
		return string(KindAdmin)
	case s.IsWorker():
		return string(KindWorker) + ":" + strconv.FormatInt(s.Worker.ID, 10)
	default:
		return ""
	}
}

// PasswordChanged clears the forced-reset flag after a successful change.
func (s *Session) PasswordChanged() {
	s.MustResetPassword = false
}
