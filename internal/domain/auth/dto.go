package auth

import (
	"strings"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/domain/worker"
	"github.com/sitemgmt/site-panel-go/internal/pkg/validator"
)

// LoginRequest is used by both the admin and the worker login.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Phone = strings.TrimSpace(r.Phone)
	return validator.Struct(r).Err()
}

// WorkerLoginResult is the backend's worker login reply.
type WorkerLoginResult struct {
	Worker            worker.Worker `json:"worker"`
	MustResetPassword bool          `json:"mustResetPassword"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (r *ChangePasswordRequest) Validate() error {
	errs := validator.Struct(r)
	if r.NewPassword != "" && r.ConfirmPassword != "" && r.NewPassword != r.ConfirmPassword {
		errs.Add("confirmPassword", "passwords do not match")
	}
	return errs.Err()
}

// ChangePasswordPayload is what the backend expects.
type ChangePasswordPayload struct {
	WorkerID    int64  `json:"workerId"`
	NewPassword string `json:"newPassword"`
}

// LoginResponse describes the session that was just created.
type LoginResponse struct {
	Kind              session.Kind     `json:"kind"`
	Worker            *session.Profile `json:"worker,omitempty"`
	MustResetPassword bool             `json:"mustResetPassword"`
}

// ProfileOf snapshots a worker into a session profile.
func ProfileOf(w worker.Worker) session.Profile {
	p := session.Profile{
		ID:             w.ID,
		Name:           w.Name,
		Phone:          w.Phone,
		RatePerDay:     w.RatePerDay,
		Address:        w.Address,
		AadhaarNumber:  w.AadhaarNumber,
		Role:           w.Role,
		JoinedDate:     w.JoinedDate,
		PoliceVerified: w.PoliceVerified,
	}
	if w.Project != nil {
		p.Project = &session.ProjectRef{ID: w.Project.ID, Name: w.Project.Name}
	}
	return p
}
