package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrUnexpectedReply    = errors.New("unexpected login reply from backend")
)
