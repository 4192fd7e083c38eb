// Package servicetest holds in-memory doubles shared by the service tests.
package servicetest

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/notification"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

// Notices records every notice instead of streaming it.
type Notices struct {
	mu   sync.Mutex
	seq  int
	sent []notification.Notice
}

func (r *Notices) New(level notification.Level, message string) notification.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return notification.Notice{ID: "n" + strconv.Itoa(r.seq), Level: level, Message: message, CreatedAt: time.Now()}
}

func (r *Notices) Follow(prev notification.Notice, level notification.Level, message string) notification.Notice {
	n := r.New(level, message)
	n.ID = prev.ID
	return n
}

func (r *Notices) Notify(_ context.Context, _ *session.Session, n notification.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *Notices) Subscribe(context.Context, *session.Session) (<-chan notification.Notice, func(), error) {
	ch := make(chan notification.Notice)
	close(ch)
	return ch, func() {}, nil
}

// Sent returns the notices in delivery order.
func (r *Notices) Sent() []notification.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Notice(nil), r.sent...)
}

// Levels returns the level of each delivered notice.
func (r *Notices) Levels() []notification.Level {
	sent := r.Sent()
	out := make([]notification.Level, len(sent))
	for i, n := range sent {
		out[i] = n.Level
	}
	return out
}

// Last returns the most recent notice, or the zero notice.
func (r *Notices) Last() notification.Notice {
	sent := r.Sent()
	if len(sent) == 0 {
		return notification.Notice{}
	}
	return sent[len(sent)-1]
}
