package fetcher

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	brandingerrors "github.com/princespaghetti/branding/internal/errors"
)

// Result is the outcome of fetching one URL in FetchAll.
type Result struct {
	URL     string
	Payload any
	Err     error
}

// FetchAll fetches every URL independently, running at most concurrency
// requests at a time. Results are returned in the order of urls. A failure
// for one URL does not affect the others, and repeated URLs are requested
// once per occurrence.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, concurrency int) []Result {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]Result, len(urls))
	sem := semaphore.NewWeighted(int64(concurrency))
	var wg sync.WaitGroup

	for i, u := range urls {
		results[i].URL = u

		// Acquire only fails once ctx is done
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i].Err = &brandingerrors.FetchError{URL: u, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			defer sem.Release(1)
			results[i].Payload, results[i].Err = f.FetchBranding(ctx, u)
		}(i, u)
	}

	wg.Wait()
	return results
}
