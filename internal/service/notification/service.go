package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/pkg/sse"
)

type service struct {
	hub *sse.Hub
	now func() time.Time
}

// NewNotificationService delivers notices through hub.
func NewNotificationService(hub *sse.Hub) notification.Service {
	return &service{hub: hub, now: time.Now}
}

func (s *service) New(level notification.Level, message string) notification.Notice {
	return notification.Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: s.now(),
	}
}

func (s *service) Follow(prev notification.Notice, level notification.Level, message string) notification.Notice {
	n := s.New(level, message)
	if prev.ID != "" {
		n.ID = prev.ID
	}
	return n
}

func (s *service) Notify(ctx context.Context, sess *session.Session, n notification.Notice) {
	key := sess.Key()
	attrs := []any{"notice_id", n.ID, "level", n.Level, "message", n.Message, "session", key}
	if n.Level == notification.LevelError {
		slog.WarnContext(ctx, "notice", attrs...)
	} else {
		slog.DebugContext(ctx, "notice", attrs...)
	}
	if key == "" {
		return
	}
	s.hub.Publish(key, sse.Event{Event: notification.EventNotice, Data: n})
}

func (s *service) Subscribe(ctx context.Context, sess *session.Session) (<-chan notification.Notice, func(), error) {
	key := sess.Key()
	if key == "" {
		return nil, nil, notification.ErrNoSubscriberKey
	}

	events, cleanup := s.hub.Subscribe(key)
	out := make(chan notification.Notice)
	done := make(chan struct{})

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				n, ok := ev.Data.(notification.Notice)
				if !ok {
					continue
				}
				select {
				case out <- n:
				case <-ctx.Done():
					return
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			close(done)
			cleanup()
		})
	}
	return out, stop, nil
}
