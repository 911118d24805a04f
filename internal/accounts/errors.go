package accounts

import "errors"

// Sentinel errors returned by the session service. Callers should use
// errors.Is to match these values. Unknown-email and wrong-password are kept
// distinct on purpose; call sites decide how much to reveal to the user.
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
