package utils

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidQrCode       = errors.New("invalid qr code")

	// Scan rejections. These are expected, user-visible outcomes the
	// scanning UI surfaces for confirmation, not faults.
	ErrAlreadyAtActivity = errors.New("participant is already at this activity")
	ErrAlreadyAtCamp     = errors.New("participant is already at camp")
	ErrMissingActivity   = errors.New("departure scan requires an activity")
	ErrInvalidScanType   = errors.New("unknown scan type")
	// ErrScanConflict means a concurrent scan updated the participant's
	// location between resolve and commit.
	ErrScanConflict = errors.New("participant location changed during scan")

	ErrDuplicateParticipant = errors.New("participant already exists for this event")
	ErrDuplicateActivity    = errors.New("activity name already exists for this event")
	ErrInvalidCsv           = errors.New("invalid csv file")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDatabaseError = errors.New("database error")
)
