// Package parallel provides parallel execution helpers.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Chunk is a half-open index range [Start, End) with its position in the
// chunk sequence.
type Chunk struct {
	Index      int
	Start, End int
}

// Chunks splits [0, total) into consecutive chunks of at most size indices.
// The split depends only on total and size.
func Chunks(total, size int) []Chunk {
	if total <= 0 {
		return nil
	}
	if size <= 0 {
		size = total
	}

	chunks := make([]Chunk, 0, (total+size-1)/size)
	for s := 0; s < total; s += size {
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: s,
			End:   min(s+size, total),
		})
	}
	return chunks
}

// ForChunks executes fn for each chunk using n workers. Chunks are handed
// out in order; with n <= 1 they run sequentially on the calling goroutine.
// Once ctx is done no further chunks are started and ctx.Err() is returned.
func ForChunks(ctx context.Context, chunks []Chunk, n int, fn func(c Chunk)) error {
	if n <= 1 {
		for _, c := range chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(c)
		}
		return nil
	}

	var wg sync.WaitGroup
	work := make(chan Chunk, n)

	// Start workers
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range work {
				fn(c)
			}
		}()
	}

	// Send chunks
	var err error
send:
	for _, c := range chunks {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case work <- c:
		case <-ctx.Done():
			err = ctx.Err()
			break send
		}
	}
	close(work)

	wg.Wait()
	return err
}
