package genbank

import (
	"sync"
	"sync/atomic"
)

// GenerateBank runs count independent Generate calls across workers
// goroutines, draining a work channel of seeds startSeed..startSeed+count-1.
// progress, if non-nil, is incremented atomically after each completed
// entry so a caller can report throughput without synchronizing on the
// result slice: bounded goroutines, atomic counter, no per-entry locking
// beyond the slice index each worker owns exclusively.
func GenerateBank(count, workers int, startSeed int64, progress *int64) ([]Entry, error) {
	if workers <= 0 {
		workers = 1
	}

	entries := make([]Entry, count)
	errs := make([]error, count)

	work := make(chan int, count)
	for i := 0; i < count; i++ {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				seed := startSeed + int64(idx)
				entry, err := Generate(seed)
				entries[idx] = entry
				errs[idx] = err
				if progress != nil {
					atomic.AddInt64(progress, 1)
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}
