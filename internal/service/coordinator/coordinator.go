// Package coordinator runs the panel's mutations: validate, call the backend,
// notify the outcome and re-fetch what changed.
package coordinator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/store"
)

// Op describes one mutation. Only Call is required.
type Op struct {
	Name string

	// Validate runs before any network call.
	Validate func() error
	Call     func(ctx context.Context) error
	// Refresh re-fetches the affected slices after a successful Call.
	Refresh func(ctx context.Context) error

	Loading        string
	Success        string
	Failure        string
	RefreshFailure string
}

type Coordinator struct {
	notices notification.Service
}

func New(notices notification.Service) *Coordinator {
	return &Coordinator{notices: notices}
}

// Run executes op for sess. A failed Call leaves the store untouched and is
// not retried. A failed Refresh is reported on its own and does not fail Run.
func (c *Coordinator) Run(ctx context.Context, sess *session.Session, op Op) (notification.Notice, error) {
	if op.Validate != nil {
		if err := op.Validate(); err != nil {
			n := c.notices.New(notification.LevelError, err.Error())
			c.notices.Notify(ctx, sess, n)
			return n, err
		}
	}

	loading := c.notices.New(notification.LevelLoading, or(op.Loading, "Working..."))
	c.notices.Notify(ctx, sess, loading)

	if err := op.Call(ctx); err != nil {
		slog.ErrorContext(ctx, "mutation failed", "op", op.Name, "session", sess.Key(), "error", err)
		n := c.notices.Follow(loading, notification.LevelError, or(op.Failure, "Request failed"))
		c.notices.Notify(ctx, sess, n)
		return n, err
	}

	done := c.notices.Follow(loading, notification.LevelSuccess, or(op.Success, "Done"))
	c.notices.Notify(ctx, sess, done)

	if op.Refresh != nil {
		_ = c.Refresh(ctx, sess, op.Name, op.RefreshFailure, op.Refresh)
	}
	return done, nil
}

// Refresh runs fetch and turns a failure into an error notice. A fetch that
// lost to a newer one is not a failure and yields nil. A cancelled fetch is
// returned without a notice.
func (c *Coordinator) Refresh(ctx context.Context, sess *session.Session, name, failure string, fetch func(ctx context.Context) error) error {
	err := fetch(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrStale):
		slog.DebugContext(ctx, "stale fetch discarded", "op", name, "session", sess.Key())
		return nil
	case errors.Is(err, context.Canceled):
		return err
	}
	slog.ErrorContext(ctx, "refresh failed", "op", name, "session", sess.Key(), "error", err)
	n := c.notices.New(notification.LevelError, or(failure, "Failed to refresh data"))
	c.notices.Notify(ctx, sess, n)
	return err
}

// Info emits a standalone informational notice.
func (c *Coordinator) Info(ctx context.Context, sess *session.Session, message string) notification.Notice {
	return c.emit(ctx, sess, notification.LevelInfo, message)
}

// Fail emits a standalone error notice, e.g. for a view that could not load.
func (c *Coordinator) Fail(ctx context.Context, sess *session.Session, message string) notification.Notice {
	return c.emit(ctx, sess, notification.LevelError, message)
}

func (c *Coordinator) emit(ctx context.Context, sess *session.Session, level notification.Level, message string) notification.Notice {
	n := c.notices.New(level, message)
	c.notices.Notify(ctx, sess, n)
	return n
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
