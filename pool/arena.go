// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena owns all frame storage for one ring: blocks*blockLen elements of T
// in a single region, allocated once and carved into fixed blocks. A block's
// backing memory is stable for the arena's lifetime.

package pool

import (
	"unsafe"

	"github.com/momentics/acqring/api"
)

// Arena is a fixed-block slab allocator. Not safe for concurrent mutation;
// Block is read-only after construction and may be called from any goroutine.
type Arena[T any] struct {
	blocks   int
	blockLen int
	slab     []T
	mapped   []byte // full mmap region when slab is mmap-backed, nil on heap
}

// NewArena allocates blocks*blockLen elements of T as one region.
// On Linux the region is mmap-backed (hugepages when the size warrants and
// the system grants them); otherwise it lives on the Go heap. Allocation is
// all-or-nothing: on failure nothing is left mapped.
//
// T must be plain data with a fixed, bit-for-bit copyable representation and
// no pointers: mmap-backed blocks live outside the Go heap, invisible to the
// garbage collector.
func NewArena[T any](blocks, blockLen int) (*Arena[T], error) {
	elemBytes := int(unsafe.Sizeof(*new(T)))
	if blocks <= 0 || blockLen <= 0 || elemBytes == 0 {
		return nil, api.ErrInvalidArgument
	}
	total := blocks * blockLen
	byteSize := total * elemBytes

	a := &Arena[T]{blocks: blocks, blockLen: blockLen}

	if mem, err := mapSlab(byteSize); err == nil {
		// mmap is page-aligned, so the cast view is aligned for any T.
		a.mapped = mem
		a.slab = unsafe.Slice((*T)(unsafe.Pointer(&mem[0])), total)
		return a, nil
	}

	a.slab = make([]T, total)
	adviseSlab(unsafe.Slice((*byte)(unsafe.Pointer(&a.slab[0])), byteSize))
	return a, nil
}

// Block returns the i-th block as a full-slice-capped view: the caller
// cannot append past the block boundary into a neighbor.
func (a *Arena[T]) Block(i int) []T {
	off := i * a.blockLen
	return a.slab[off : off+a.blockLen : off+a.blockLen]
}

// Blocks returns the number of blocks carved from the slab.
func (a *Arena[T]) Blocks() int { return a.blocks }

// BlockLen returns the element count of each block.
func (a *Arena[T]) BlockLen() int { return a.blockLen }

// Close releases the slab. Any outstanding block views become invalid.
// Safe to call more than once.
func (a *Arena[T]) Close() error {
	a.slab = nil
	if a.mapped == nil {
		return nil
	}
	mem := a.mapped
	a.mapped = nil
	return unmapSlab(mem)
}
