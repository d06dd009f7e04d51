// File: pool/arena_linux.go
//go:build linux

// Package pool: Linux-specific slab allocation using hugepages.
//
// Slabs are mapped via mmap, with a MAP_HUGETLB attempt for 2 MiB pages when
// the slab is large enough. Falls back to a plain anonymous mapping when the
// system has no hugepages configured.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

const hugeSize = 2 << 20 // 2 MiB hugepage

// mapSlab maps an anonymous region of at least size bytes.
// The returned slice keeps the full mapped length so unmapSlab releases the
// whole region.
func mapSlab(size int) ([]byte, error) {
	if size >= hugeSize {
		length := ((size + hugeSize - 1) / hugeSize) * hugeSize
		mem, err := unix.Mmap(-1, 0, length,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err == nil {
			return mem, nil
		}
		// No hugepages available; fall through to a regular mapping.
	}
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
}

// unmapSlab returns the region to the OS.
func unmapSlab(mem []byte) error {
	return unix.Munmap(mem)
}

// adviseSlab requests transparent hugepages for a heap-backed slab.
// Advisory only; errors are ignored.
func adviseSlab(mem []byte) {
	if len(mem) >= hugeSize {
		_ = unix.Madvise(mem, unix.MADV_HUGEPAGE)
	}
}
