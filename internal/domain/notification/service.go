package notification

import (
	"context"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// Notifier is the user-visible notification channel.
type Notifier interface {
	// Notify delivers n to the session's notice stream. It never blocks on slow readers.
	Notify(ctx context.Context, sess *session.Session, n Notice)
}

// Service defines the notification service interface
type Service interface {
	Notifier

	// New creates a notice with a fresh ID.
	New(level Level, message string) Notice
	// Follow creates a notice that replaces prev (same ID).
	Follow(prev Notice, level Level, message string) Notice

	// SSE subscription
	Subscribe(ctx context.Context, sess *session.Session) (<-chan Notice, func(), error)
}
