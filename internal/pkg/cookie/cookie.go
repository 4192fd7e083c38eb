package cookie

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
)

const (
	AdminName  = "site_admin"
	WorkerName = "site_worker"
)

// workerPayload is the worker cookie body: the profile fields plus the reset flag.
type workerPayload struct {
	session.Profile
	MustResetPassword bool `json:"mustResetPassword"`
}

// Manager reads and writes the panel's session cookies. The cookies are
// unsigned flags; they gate navigation only.
type Manager struct {
	path   string
	secure bool
}

func NewManager(path string, secure bool) *Manager {
	if path == "" {
		path = "/"
	}
	return &Manager{path: path, secure: secure}
}

// Admin returns the admin session when the admin cookie is set.
func (m *Manager) Admin(r *http.Request) (*session.Session, error) {
	c, err := r.Cookie(AdminName)
	if err != nil || c.Value != "true" {
		return nil, session.ErrNoSession
	}
	return session.NewAdmin(), nil
}

// Worker decodes the worker cookie.
func (m *Manager) Worker(r *http.Request) (*session.Session, error) {
	c, err := r.Cookie(WorkerName)
	if err != nil || c.Value == "" {
		return nil, session.ErrNoSession
	}
	return DecodeWorker(c.Value)
}

// Write stores sess in the matching cookie.
func (m *Manager) Write(w http.ResponseWriter, sess *session.Session) error {
	switch {
	case sess.IsAdmin():
		http.SetCookie(w, m.cookie(AdminName, "true"))
	case sess.IsWorker():
		value, err := EncodeWorker(sess)
		if err != nil {
			return err
		}
		http.SetCookie(w, m.cookie(WorkerName, value))
	default:
		return session.ErrNoSession
	}
	return nil
}

// Clear expires the cookie for kind.
func (m *Manager) Clear(w http.ResponseWriter, kind session.Kind) {
	name := AdminName
	if kind == session.KindWorker {
		name = WorkerName
	}
	c := m.cookie(name, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

func (m *Manager) cookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func EncodeWorker(sess *session.Session) (string, error) {
	if !sess.IsWorker() {
		return "", session.ErrWorkerRequired
	}
	raw, err := json.Marshal(workerPayload{Profile: *sess.Worker, MustResetPassword: sess.MustResetPassword})
	if err != nil {
		return "", fmt.Errorf("failed to encode worker session: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

// DecodeWorker accepts both URL-safe and standard base64.
func DecodeWorker(value string) (*session.Session, error) {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		raw, err = base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", session.ErrMalformedWorkerSession, err)
		}
	}

	var p workerPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", session.ErrMalformedWorkerSession, err)
	}
	if p.ID <= 0 {
		return nil, session.ErrMalformedWorkerSession
	}
	return session.NewWorker(p.Profile, p.MustResetPassword), nil
}
