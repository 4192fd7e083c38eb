package siteapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/pkg/siteapi"
)

const loginSuccess = "LOGIN_SUCCESS"

type authRepository struct {
	api *siteapi.Client
}

func NewAuthRepository(api *siteapi.Client) auth.AuthRepository {
	return &authRepository{api: api}
}

func (r *authRepository) AdminLogin(ctx context.Context, req auth.LoginRequest) error {
	var reply string
	if err := r.api.Post(ctx, "/api/admin/login", req, &reply); err != nil {
		return credentialsErr(err)
	}
	if strings.TrimSpace(reply) != loginSuccess {
		return fmt.Errorf("%w: %q", auth.ErrUnexpectedReply, reply)
	}
	return nil
}

func (r *authRepository) WorkerLogin(ctx context.Context, req auth.LoginRequest) (auth.WorkerLoginResult, error) {
	var out auth.WorkerLoginResult
	if err := r.api.Post(ctx, "/api/auth/worker/login", req, &out); err != nil {
		return auth.WorkerLoginResult{}, credentialsErr(err)
	}
	if out.Worker.ID == 0 {
		return auth.WorkerLoginResult{}, auth.ErrUnexpectedReply
	}
	return out, nil
}

func (r *authRepository) ChangePassword(ctx context.Context, p auth.ChangePasswordPayload) error {
	if err := r.api.Post(ctx, "/api/auth/worker/change-password", p, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func (r *authRepository) ResetWorkerPassword(ctx context.Context, workerID int64) error {
	if err := r.api.Post(ctx, idPath("/api/auth/admin/reset-password", workerID), nil, nil); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

// credentialsErr maps a rejected login onto the domain error. The worker
// login endpoint reports bad credentials as a server error whose message
// says so, the admin endpoint as a 401.
func credentialsErr(err error) error {
	var apiErr *siteapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode < 500 || strings.Contains(strings.ToLower(apiErr.Message), "invalid credentials") {
			return errors.Join(auth.ErrInvalidCredentials, err)
		}
	}
	return fmt.Errorf("login failed: %w", err)
}
