package interfaces

import "errors"

// Backend failure classes. ISalesAPI implementations wrap their errors so that
// errors.Is matches one of these.
var (
	ErrUnauthorized       = errors.New("backend unauthorized")
	ErrNotFound           = errors.New("backend resource not found")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
