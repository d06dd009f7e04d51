// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package acqring implements a fixed-capacity, push-only circular buffer for
// high-rate handoff of fixed-size frames between exactly one producer
// goroutine and exactly one consumer goroutine.
//
// Frames pushed to the ring are stamped with the cumulative push count, so
// the consumer addresses frames by absolute sequence number rather than ring
// position. Checking a frame out exchanges its storage with a spare block in
// O(1) — no data copy — and the checked-out block stays stable until
// released, no matter how far the producer advances in the meantime.
//
// Thread assignment is a hard contract: Push/LockOutHead/ReleaseHead from one
// goroutine, LockOut*/Release from one other. All waiting is active
// spin/retry; nothing parks. Behavior under additional producers or
// consumers is undefined.
package acqring
