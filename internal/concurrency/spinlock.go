// File: internal/concurrency/spinlock.go
// Package concurrency implements the spin primitives behind the slot lock set.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLock is a CAS-based mutual exclusion lock with a non-blocking TryLock.
// All waiting is active spin/retry; the lock never parks a goroutine. The
// acquiring CAS and releasing store give the usual acquire/release ordering,
// so writes made under the lock are visible to the next holder.

package concurrency

import (
	"runtime"
	"sync/atomic"
)

const goschedEvery = 64 // reduce runtime.Gosched() frequency in hot loops

// SpinLock is a spinning mutual exclusion lock. The zero value is unlocked.
// Must not be copied after first use.
type SpinLock struct {
	state atomic.Uint32
}

// TryLock acquires the lock without waiting. Returns false if held.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Lock spins until the lock is acquired, yielding the processor every
// goschedEvery failed attempts.
func (l *SpinLock) Lock() {
	var spins uint32
	for !l.TryLock() {
		spins++
		if spins%goschedEvery == 0 {
			runtime.Gosched()
		}
	}
}

// Unlock releases the lock. Must only be called by the current holder.
func (l *SpinLock) Unlock() {
	l.state.Store(0)
}
