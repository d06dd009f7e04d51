// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-block slab arena backing the acquisition ring.
// Preallocates all frame blocks as one contiguous region — mmap-backed with a
// hugepage attempt on Linux, Go heap elsewhere — and carves it into
// equally sized, capacity-capped blocks that never move or resize.
// See arena.go, arena_linux.go, arena_stub.go for implementation details.
package pool
