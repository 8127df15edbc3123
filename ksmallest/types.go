package ksmallest

import "errors"

var (
	// ErrBadK indicates that New was called with k < 1. A tracker that can
	// retain nothing is a configuration mistake and is rejected up front.
	ErrBadK = errors.New("ksmallest: k must be >= 1")
)
