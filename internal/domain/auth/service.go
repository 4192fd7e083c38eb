package auth

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

type AuthService interface {
	AdminLogin(ctx context.Context, req LoginRequest) (*session.Session, error)
	WorkerLogin(ctx context.Context, req LoginRequest) (*session.Session, error)
	// ChangePassword updates the backend and clears the session's reset flag.
	ChangePassword(ctx context.Context, sess *session.Session, req ChangePasswordRequest) (notification.Notice, error)
	// Logout drops the session's record store.
	Logout(ctx context.Context, sess *session.Session) error
}
