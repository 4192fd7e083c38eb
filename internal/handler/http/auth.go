package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sitemgmt/site-panel-go/internal/domain/auth"
	"github.com/sitemgmt/site-panel-go/internal/domain/session"
	"github.com/sitemgmt/site-panel-go/internal/handler/http/response"
	"github.com/sitemgmt/site-panel-go/internal/pkg/cookie"
)

type AuthHandler interface {
	AdminLogin(w http.ResponseWriter, r *http.Request)
	WorkerLogin(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	cookies     *cookie.Manager
}

func NewAuthHandler(authService auth.AuthService, cookies *cookie.Manager) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		cookies:     cookies,
	}
}

// AdminLogin implements AuthHandler.
func (a *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, "AdminLogin", a.authService.AdminLogin)
}

// WorkerLogin implements AuthHandler.
func (a *AuthHandlerImpl) WorkerLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, "WorkerLogin", a.authService.WorkerLogin)
}

func (a *AuthHandlerImpl) login(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, req auth.LoginRequest) (*session.Session, error)) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if !decodeJSON(w, r, op, &loginReq) {
		return
	}

	// 2. Call service
	sess, err := fn(r.Context(), loginReq)
	if err != nil {
		slog.Error(op+" service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// 3. Persist the session
	if err := a.cookies.Write(w, sess); err != nil {
		slog.Error(op+" cookie error", "error", err)
		response.InternalServerError(w, "Failed to store session")
		return
	}

	slog.Info("login succeeded", "session", sess.Key(), "must_reset_password", sess.MustResetPassword)
	response.SuccessWithMessage(w, "Login successful", loginResponse(sess))
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req auth.ChangePasswordRequest
	if !decodeJSON(w, r, "ChangePassword", &req) {
		return
	}

	notice, err := a.authService.ChangePassword(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// The reset flag lives in the cookie, so rewrite it.
	if err := a.cookies.Write(w, sess); err != nil {
		slog.Error("ChangePassword cookie error", "error", err)
	}
	response.Notice(w, notice)
}

// Logout implements AuthHandler. Both panels are logged out when both cookies are present.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	for _, kind := range []session.Kind{session.KindAdmin, session.KindWorker} {
		var (
			sess *session.Session
			err  error
		)
		if kind == session.KindAdmin {
			sess, err = a.cookies.Admin(r)
		} else {
			sess, err = a.cookies.Worker(r)
		}
		if err == nil {
			if err := a.authService.Logout(r.Context(), sess); err != nil {
				slog.Warn("Logout service error", "error", err, "session", sess.Key())
			}
		}
		a.cookies.Clear(w, kind)
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}
	response.Success(w, loginResponse(sess))
}

func loginResponse(sess *session.Session) auth.LoginResponse {
	return auth.LoginResponse{
		Kind:              sess.Kind,
		Worker:            sess.Worker,
		MustResetPassword: sess.MustResetPassword,
	}
}
