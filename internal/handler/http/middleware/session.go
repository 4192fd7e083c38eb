package middleware

import (
	"context"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/cookie"
)

type ctxKey struct{}

// WithSession stores sess in ctx.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// SessionFrom returns the session put there by one of the gates below.
func SessionFrom(ctx context.Context) (*session.Session, error) {
	sess, ok := ctx.Value(ctxKey{}).(*session.Session)
	if !ok || sess == nil {
		return nil, session.ErrNoSession
	}
	return sess, nil
}

// AdminRequired admits requests carrying the admin cookie.
func AdminRequired(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := cookies.Admin(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WorkerSession admits any worker, including one who still has to reset
// the password.
func WorkerSession(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := cookies.Worker(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WorkerRequired is WorkerSession plus the forced password reset gate.
func WorkerRequired(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		gate := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, _ := SessionFrom(r.Context())
			if sess.MustResetPassword {
				response.HandleError(w, session.ErrPasswordResetRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
		return WorkerSession(cookies)(gate)
	}
}

// AnySession picks the panel from the "panel" query parameter. Without it the
// admin cookie wins over the worker cookie.
func AnySession(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				sess *session.Session
				err  error
			)
			switch session.Kind(r.URL.Query().Get("panel")) {
			case session.KindAdmin:
				sess, err = cookies.Admin(r)
			case session.KindWorker:
				sess, err = cookies.Worker(r)
			default:
				if sess, err = cookies.Admin(r); err != nil {
					sess, err = cookies.Worker(r)
				}
			}
			if err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
