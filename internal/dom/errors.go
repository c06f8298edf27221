package dom

import "errors"

// ErrNotFound is returned when a lookup matches nothing. Callers treat it as
// absence of content rather than a failure.
var ErrNotFound = errors.New("element not found")
