package notification

import "errors"

// Notification domain errors
var (
	ErrNoSubscriberKey = errors.New("session has no notice stream")
)
