// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types shared across the acqring library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrBusy is returned by non-blocking checkout when another checkout is
	// outstanding, or when the target slot's lock is momentarily held by the
	// producer. Recoverable by retrying.
	ErrBusy = fmt.Errorf("checkout busy")

	// ErrTimeout is returned by the deadline-bounded checkout variant.
	ErrTimeout = fmt.Errorf("operation timeout")

	// ErrInvalidArgument reports a zero or negative capacity/element size.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrNotSupported reports an operation unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")
)
