package testutil

import (
	"errors"
	"sync"

	"cobalt/internal/sentinel"
)

// ConcurrentResult counts how n parallel calls ended.
type ConcurrentResult struct {
	Successes int32
	Conflicts int32
	NotFounds int32
	Errors    int32
	// Failures keeps the unclassified errors for assertion messages.
	Failures []error
}

// Total is the number of calls that returned.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Conflicts + r.NotFounds + r.Errors
}

// RunConcurrent calls fn from n goroutines released together and buckets the
// results by sentinel error.
func RunConcurrent(n int, fn func(idx int) error) *ConcurrentResult {
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}()
	}
	close(start)
	wg.Wait()

	result := &ConcurrentResult{}
	for _, err := range errs {
		switch {
		case err == nil:
			result.Successes++
		case errors.Is(err, sentinel.ErrAlreadyUsed):
			result.Conflicts++
		case errors.Is(err, sentinel.ErrNotFound):
			result.NotFounds++
		default:
			result.Errors++
			result.Failures = append(result.Failures, err)
		}
	}
	return result
}
