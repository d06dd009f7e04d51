package concurrency

import (
	"sync"
	"testing"
)

func TestSpinLockTryLock(t *testing.T) {
	var l SpinLock

	if !l.TryLock() {
		t.Fatal("TryLock on a free lock must succeed")
	}
	if l.TryLock() {
		t.Fatal("TryLock on a held lock must fail")
	}
	l.Unlock()
	if !l.TryLock() {
		t.Fatal("TryLock after Unlock must succeed")
	}
	l.Unlock()
}

// Two goroutines increment a shared counter under the lock; any lost update
// means mutual exclusion is broken.
func TestSpinLockMutualExclusion(t *testing.T) {
	const (
		goroutines = 4
		iterations = 50_000
	)

	var (
		l       SpinLock
		counter int
		wg      sync.WaitGroup
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Fatalf("counter = %d, want %d (lost updates)", counter, goroutines*iterations)
	}
}
