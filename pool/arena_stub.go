// File: pool/arena_stub.go
//go:build !linux

// Package pool: non-Linux fallback. Slabs live on the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/momentics/acqring/api"

// mapSlab always fails off Linux; NewArena falls back to the heap.
func mapSlab(size int) ([]byte, error) {
	return nil, api.ErrNotSupported
}

func unmapSlab(mem []byte) error {
	return nil
}

func adviseSlab(mem []byte) {}
