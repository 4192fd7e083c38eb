package task

import "errors"

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrNotOwnTask     = errors.New("task is not assigned to this worker")
	ErrBackwardStatus = errors.New("task status can only move forward")
)
