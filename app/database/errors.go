package database

import "errors"

// Sentinel errors consumed by the route handlers to pick status codes. Store
// failures that are none of these are logged and surface as a generic 500.
var (
	// ErrNotFound means a referenced id does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrAttendanceComplete means the attendance row for the requested
	// (enrollment, date) already has both check-in and check-out set.
	ErrAttendanceComplete = errors.New("attendance for this date is already complete")
)
