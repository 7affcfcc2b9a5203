package tracker

import "errors"

// Not-found conditions the handlers translate to 404 responses. Both are
// normal outcomes for riders, not failures.
var (
	ErrAssignmentNotFound = errors.New("no active assignment found")
	ErrLocationNotFound   = errors.New("driver location not available")
	ErrAccountNotFound    = errors.New("account not found")
)

// ErrInvalidCredentials keeps login failures indistinguishable between
// unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")
