// File: stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package acqring

import "github.com/momentics/acqring/api"

// Stats returns a snapshot of ring activity counters. Counters are read
// individually; a snapshot taken during activity is approximate.
func (r *Ring[T]) Stats() api.RingStats {
	return api.RingStats{
		Pushes:           r.count.Load(),
		Checkouts:        r.checkouts.Load(),
		BusyRejections:   r.busy.Load(),
		DeadlineExpiries: r.expired.Load(),
	}
}
