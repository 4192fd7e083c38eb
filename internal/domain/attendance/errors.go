package attendance

import "errors"

var (
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyMarked = errors.New("attendance already marked for this worker on this date")
	ErrNothingToMark           = errors.New("attendance already marked for all workers")
)
