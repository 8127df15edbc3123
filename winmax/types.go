package winmax

import "errors"

var (
	// ErrBadWindow indicates that New was called with a window size < 1.
	// A zero-width window has no maximum to report; the mistake is
	// rejected at construction time.
	ErrBadWindow = errors.New("winmax: window size must be >= 1")
)
