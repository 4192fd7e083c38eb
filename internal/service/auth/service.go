package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/service/coordinator"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

// StreamCloser ends every notice stream of a session key.
type StreamCloser interface {
	Close(key string)
}

type AuthServiceImpl struct {
	authRepo auth.AuthRepository
	stores   *store.Registry
	streams  StreamCloser
	coord    *coordinator.Coordinator
}

func NewAuthService(authRepo auth.AuthRepository, stores *store.Registry, streams StreamCloser, coord *coordinator.Coordinator) auth.AuthService {
	return &AuthServiceImpl{
		authRepo: authRepo,
		stores:   stores,
		streams:  streams,
		coord:    coord,
	}
}

// AdminLogin implements auth.AuthService.
func (a *AuthServiceImpl) AdminLogin(ctx context.Context, req auth.LoginRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := a.authRepo.AdminLogin(ctx, req); err != nil {
		return nil, loginErr("admin", err)
	}

	sess := session.NewAdmin()
	// A fresh login starts from an empty store.
	a.stores.Drop(sess.Key())
	slog.InfoContext(ctx, "admin logged in")
	return sess, nil
}

// WorkerLogin implements auth.AuthService.
func (a *AuthServiceImpl) WorkerLogin(ctx context.Context, req auth.LoginRequest) (*session.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res, err := a.authRepo.WorkerLogin(ctx, req)
	if err != nil {
		return nil, loginErr("worker", err)
	}
	if res.Worker.ID == 0 {
		return nil, auth.ErrUnexpectedReply
	}

	sess := session.NewWorker(auth.ProfileOf(res.Worker), res.MustResetPassword)
	a.stores.Drop(sess.Key())
	slog.InfoContext(ctx, "worker logged in", "worker_id", res.Worker.ID, "must_reset_password", res.MustResetPassword)
	return sess, nil
}

// ChangePassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, sess *session.Session, req auth.ChangePasswordRequest) (notification.Notice, error) {
	n, err := a.coord.Run(ctx, sess, coordinator.Op{
		Name: "auth.changePassword",
		Validate: func() error {
			if !sess.IsWorker() {
				return session.ErrWorkerRequired
			}
			return req.Validate()
		},
		Call: func(ctx context.Context) error {
			return a.authRepo.ChangePassword(ctx, auth.ChangePasswordPayload{
				WorkerID:    sess.WorkerID(),
				NewPassword: req.NewPassword,
			})
		},
		Loading: "Changing password...",
		Success: "Password changed",
		Failure: "Failed to change password",
	})
	if err != nil {
		return n, err
	}
	sess.PasswordChanged()
	return n, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, sess *session.Session) error {
	key := sess.Key()
	if key == "" {
		return session.ErrNoSession
	}
	a.stores.Drop(key)
	a.streams.Close(key)
	slog.InfoContext(ctx, "logged out", "session", key)
	return nil
}

func loginErr(kind string, err error) error {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		slog.Warn("login rejected", "kind", kind)
		return err
	}
	return fmt.Errorf("%s login failed: %w", kind, err)
}
