// File: lease.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package acqring

import (
	"sync/atomic"

	"github.com/momentics/acqring/api"
)

// lease is a checked-out frame block. Its storage sits outside the ring
// until Release, so the producer cannot overwrite it.
type lease[T any] struct {
	ring     *Ring[T]
	block    []T
	seq      int64
	released atomic.Bool
}

// Data returns the leased block. Valid until Release.
func (l *lease[T]) Data() []T { return l.block }

// Seq returns the sequence number of the frame actually found in the block.
// Zero means the slot had never been written.
func (l *lease[T]) Seq() int64 { return l.seq }

// Release returns the checkout state to FREE, permitting the next checkout.
// Idempotent: a stale second call cannot free a later lease's checkout.
func (l *lease[T]) Release() {
	if l.released.CompareAndSwap(false, true) {
		l.ring.release()
	}
}

var _ api.Lease[byte] = (*lease[byte])(nil)
