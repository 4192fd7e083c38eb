package session

import "errors"

var (
	ErrNoSession              = errors.New("not logged in")
	ErrAdminRequired          = errors.New("admin login required")
	ErrWorkerRequired         = errors.New("worker login required")
	ErrPasswordResetRequired  = errors.New("password must be reset before continuing")
	ErrMalformedWorkerSession = errors.New("stored worker session is malformed")
)
