package service

import "errors"

// Sentinel errors surfaced by the domain services. Storage-level failures are
// reported via store.ErrStorageUnavailable / store.ErrConstraintViolation.
var (
	// ErrInvalidCredentials covers wrong user and wrong password alike; no
	// distinction is surfaced to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongCurrentPassword rejects a password change whose proof of the
	// current password failed.
	ErrWrongCurrentPassword = errors.New("wrong current password")

	// ErrDuplicateReceiptNo means the receipt-number unique index rejected
	// the insert.
	ErrDuplicateReceiptNo = errors.New("duplicate receipt number")

	// ErrInvalidInput rejects malformed domain input before it reaches the
	// store.
	ErrInvalidInput = errors.New("invalid input")
)
