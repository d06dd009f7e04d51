// File: api/acq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts for the push-only acquisition ring: producer write surface,
// consumer checkout surface, and the leased block handle.
//
// All checkout operations are zero-copy: the ring exchanges storage with a
// spare slot instead of copying frame data.

package api

import "time"

// Lease is a checked-out frame block. The block is stable: the producer
// cannot touch it until Release returns it to the ring's spare position.
type Lease[T any] interface {
	// Data returns the leased block. Valid until Release.
	Data() []T

	// Seq returns the absolute sequence number of the frame actually found
	// in the block. Zero means the slot was never written. A value different
	// from the requested sequence means the requested frame was overwritten
	// by ring wrap-around.
	Seq() int64

	// Release returns the block to the ring, permitting the next checkout.
	// Idempotent per lease; a second call is a no-op.
	Release()
}

// Producer is the single-producer write surface.
// All methods must be called from exactly one goroutine.
type Producer[T any] interface {
	// Push copies one frame into the head slot, stamps it with the next
	// sequence number, advances the head, and returns the position written.
	Push(src []T) int

	// LockOutHead hands out the head slot's block for in-place writing,
	// holding the slot lock until ReleaseHead.
	LockOutHead() []T

	// ReleaseHead completes an in-place write: stamps the sequence number,
	// advances the head, releases the slot lock, returns the position written.
	ReleaseHead() int

	// LatestIndex returns the cumulative push count.
	LatestIndex() int64
}

// Consumer is the single-consumer checkout surface.
// All methods must be called from exactly one goroutine.
type Consumer[T any] interface {
	// LockOutNoWait checks out the slot for absolute sequence number n
	// without blocking. Fails with ErrBusy if a checkout is outstanding or
	// the slot lock is held.
	LockOutNoWait(n int64) (Lease[T], error)

	// LockOutWait is LockOutNoWait that spins without bound instead of
	// failing. Can livelock if the single-consumer discipline is violated.
	LockOutWait(n int64) Lease[T]

	// LockOutDeadline is LockOutWait bounded by d; fails with ErrTimeout.
	LockOutDeadline(n int64, d time.Duration) (Lease[T], error)
}

// RingStats aggregates ring activity counters for observability.
type RingStats struct {
	Pushes           int64
	Checkouts        int64
	BusyRejections   int64
	DeadlineExpiries int64
}
