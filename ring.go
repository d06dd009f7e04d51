// File: ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The acquisition ring: N slots plus one spare, a per-slot spinlock set, and
// an atomic checkout state gating the slot/spare exchange.

package acqring

import (
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/momentics/acqring/api"
	"github.com/momentics/acqring/internal/concurrency"
	"github.com/momentics/acqring/pool"
)

const goschedEvery = 64 // reduce runtime.Gosched() frequency in hot loops

// Checkout state values. Non-negative values mean HELD and carry the ring
// position the outstanding checkout vacated.
const (
	checkoutFree     int64 = -1
	checkoutSwapping int64 = -2 // exchange in progress, excludes a second checkout
)

const (
	seqEmpty = 0  // sequence tag of a never-written slot (valid sequences start at 1)
	sparePos = -1 // position tag of the slot currently outside the ring
)

// slot couples one fixed-size block with its ring bookkeeping.
// pos and seq are guarded by the slot's lock while the slot is in the ring.
type slot[T any] struct {
	block []T
	pos   int
	seq   int64
}

// Ring is a push-only circular buffer of fixed-size frame blocks.
//
// Thread assignment:
//   - Push, LockOutHead, ReleaseHead: producer goroutine only
//   - LockOutNoWait, LockOutWait, LockOutDeadline: consumer goroutine only
//   - LatestIndex, Stats: any goroutine
//   - Clear, Close: exclusive access only
type Ring[T any] struct {
	size     int
	elemSize int
	arena    *pool.Arena[T]

	slots []*slot[T]
	spare *slot[T] // consumer-owned, exchanged into the ring on checkout
	locks []concurrency.SpinLock

	_        cpu.CacheLinePad
	head     int          // next write position, producer-owned
	count    atomic.Int64 // cumulative pushes
	_        cpu.CacheLinePad
	checkout atomic.Int64
	_        cpu.CacheLinePad

	checkouts atomic.Int64
	busy      atomic.Int64
	expired   atomic.Int64
}

// New creates a ring of capacity slots holding elemSize elements of T each,
// preallocating capacity+1 blocks from a single arena slab. All sequence
// tags start empty. T must be plain pointer-free data; see pool.NewArena.
func New[T any](capacity, elemSize int) (*Ring[T], error) {
	if capacity <= 0 || elemSize <= 0 {
		return nil, api.ErrInvalidArgument
	}
	arena, err := pool.NewArena[T](capacity+1, elemSize)
	if err != nil {
		return nil, err
	}

	r := &Ring[T]{
		size:     capacity,
		elemSize: elemSize,
		arena:    arena,
		slots:    make([]*slot[T], capacity),
		locks:    make([]concurrency.SpinLock, capacity),
	}
	for i := range r.slots {
		r.slots[i] = &slot[T]{block: arena.Block(i), pos: i, seq: seqEmpty}
	}
	r.spare = &slot[T]{block: arena.Block(capacity), pos: sparePos, seq: seqEmpty}
	r.checkout.Store(checkoutFree)
	return r, nil
}

// mod is the floored modulus, well-defined for negative a.
func mod(a, b int64) int64 {
	return ((a % b) + b) % b
}

// slotFor maps a 1-based absolute sequence number onto its ring position.
// Any integer is accepted; wrap-around means the position may by now hold a
// newer frame, which the checkout contract surfaces via the returned seq.
func (r *Ring[T]) slotFor(n int64) int {
	return int(mod(n-1, int64(r.size)))
}

// Capacity returns the number of ring slots.
func (r *Ring[T]) Capacity() int { return r.size }

// ElemSize returns the element count of each frame block.
func (r *Ring[T]) ElemSize() int { return r.elemSize }

// LatestIndex returns the cumulative push count, which is also the sequence
// number of the most recently pushed frame.
func (r *Ring[T]) LatestIndex() int64 {
	return r.count.Load()
}

// Push copies min(len(src), elemSize) elements into the head slot, stamps it
// with the next sequence number, advances the head, and returns the position
// written. Producer goroutine only.
func (r *Ring[T]) Push(src []T) int {
	lock := &r.locks[r.head]
	lock.Lock()
	s := r.slots[r.head]
	copy(s.block, src)
	s.seq = r.count.Add(1)
	written := r.head
	r.head = int(mod(int64(r.head)+1, int64(r.size)))
	lock.Unlock()
	return written
}

// LockOutHead hands out the head slot's block for in-place writing, sparing
// the caller Push's copy. The slot lock is held until ReleaseHead, so the
// consumer cannot check the head position out mid-write. Producer goroutine
// only; must be paired with ReleaseHead.
func (r *Ring[T]) LockOutHead() []T {
	r.locks[r.head].Lock()
	return r.slots[r.head].block
}

// ReleaseHead completes an in-place write started by LockOutHead: stamps the
// sequence number, advances the head, releases the slot lock, and returns
// the position written.
func (r *Ring[T]) ReleaseHead() int {
	s := r.slots[r.head]
	s.seq = r.count.Add(1)
	written := r.head
	r.head = int(mod(int64(r.head)+1, int64(r.size)))
	r.locks[written].Unlock()
	return written
}

// exchange swaps the ring slot at idx with the spare and records HELD.
// Caller must hold the slot lock and have the checkout state at
// checkoutSwapping.
func (r *Ring[T]) exchange(idx int) *lease[T] {
	out := r.slots[idx]
	r.slots[idx] = r.spare
	r.slots[idx].pos = idx
	r.spare = out
	r.spare.pos = sparePos
	r.checkout.Store(int64(idx))
	return &lease[T]{ring: r, block: out.block, seq: out.seq}
}

// LockOutNoWait checks out the frame for absolute sequence number n without
// blocking. It fails with api.ErrBusy if another checkout is outstanding or
// the target slot's lock is momentarily held by the producer.
//
// The lease's Seq may differ from n: if the requested frame was overwritten
// by wrap-around, the lease carries whatever newer frame occupies the slot
// now. Callers compare Seq against n to tell the two apart. Consumer
// goroutine only.
func (r *Ring[T]) LockOutNoWait(n int64) (api.Lease[T], error) {
	if !r.checkout.CompareAndSwap(checkoutFree, checkoutSwapping) {
		r.busy.Add(1)
		return nil, api.ErrBusy
	}
	idx := r.slotFor(n)
	if !r.locks[idx].TryLock() {
		r.checkout.Store(checkoutFree)
		r.busy.Add(1)
		return nil, api.ErrBusy
	}
	l := r.exchange(idx)
	r.locks[idx].Unlock()
	r.checkouts.Add(1)
	return l, nil
}

// LockOutWait is LockOutNoWait that spins until the checkout can proceed.
// No bound: if the producer/consumer discipline is violated (a forgotten
// Release, a second consumer) this spins forever. Callers needing a bound
// use LockOutDeadline. Consumer goroutine only.
func (r *Ring[T]) LockOutWait(n int64) api.Lease[T] {
	var spins uint32
	for !r.checkout.CompareAndSwap(checkoutFree, checkoutSwapping) {
		spins++
		if spins%goschedEvery == 0 {
			runtime.Gosched()
		}
	}
	idx := r.slotFor(n)
	r.locks[idx].Lock()
	l := r.exchange(idx)
	r.locks[idx].Unlock()
	r.checkouts.Add(1)
	return l
}

// LockOutDeadline is LockOutWait bounded by d. Returns api.ErrTimeout if the
// checkout could not begin within the bound. Consumer goroutine only.
func (r *Ring[T]) LockOutDeadline(n int64, d time.Duration) (api.Lease[T], error) {
	deadline := time.Now().Add(d)
	var spins uint32
	for !r.checkout.CompareAndSwap(checkoutFree, checkoutSwapping) {
		spins++
		if spins%goschedEvery == 0 {
			if time.Now().After(deadline) {
				r.expired.Add(1)
				return nil, api.ErrTimeout
			}
			runtime.Gosched()
		}
	}
	idx := r.slotFor(n)
	for !r.locks[idx].TryLock() {
		spins++
		if spins%goschedEvery == 0 {
			if time.Now().After(deadline) {
				r.checkout.Store(checkoutFree)
				r.expired.Add(1)
				return nil, api.ErrTimeout
			}
			runtime.Gosched()
		}
	}
	l := r.exchange(idx)
	r.locks[idx].Unlock()
	r.checkouts.Add(1)
	return l, nil
}

// release returns the checkout state to FREE. Called via Lease.Release.
func (r *Ring[T]) release() {
	r.checkout.Store(checkoutFree)
}

// Clear resets every sequence tag to empty and all counters to zero without
// reallocating storage. Not safe to call concurrently with producer or
// consumer activity; the caller must guarantee exclusivity.
func (r *Ring[T]) Clear() {
	for i := range r.slots {
		r.locks[i].Lock()
		r.slots[i].pos = i
		r.slots[i].seq = seqEmpty
		r.locks[i].Unlock()
	}
	r.spare.pos = sparePos
	r.spare.seq = seqEmpty
	r.head = 0
	r.count.Store(0)
	r.checkouts.Store(0)
	r.busy.Store(0)
	r.expired.Store(0)
	r.checkout.Store(checkoutFree)
}

// Close frees all capacity+1 blocks. The ring and any outstanding lease must
// not be used afterwards.
func (r *Ring[T]) Close() error {
	return r.arena.Close()
}

// Compile-time contract checks.
var (
	_ api.Producer[byte] = (*Ring[byte])(nil)
	_ api.Consumer[byte] = (*Ring[byte])(nil)
)
