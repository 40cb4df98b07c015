package randseed

import (
	"context"

	"github.com/nozzle/randseed/internal/parallel"
)

// Fork derives n independent generators from r. Child i is seeded with the
// i-th of n consecutive draws from r, so the children depend only on r's
// state and n.
func (r *Rand) Fork(n int) []*Rand {
	children := make([]*Rand, max(n, 0))
	for i := range children {
		children[i] = New(r.Next())
	}
	return children
}

// ParallelConfig configures ParallelChunks.
type ParallelConfig struct {
	// ChunkSize is the number of indices handled by one forked generator.
	// The output depends on ChunkSize but not on NumWorkers.
	// Default: 1024
	ChunkSize int

	// NumWorkers for parallel processing.
	// 0 = auto-detect based on CPU cores.
	// Default: 0
	NumWorkers int
}

// DefaultParallelConfig returns the default ParallelChunks configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		ChunkSize:  1024,
		NumWorkers: 0,
	}
}

// ParallelChunks splits [0, total) into chunks of config.ChunkSize indices,
// forks one generator per chunk from r, and calls fn for every chunk on a
// pool of workers. Each call owns its generator, so fn may draw freely.
// Results written by index are identical for any worker count.
//
// r advances by one draw per chunk. If ctx is cancelled, chunks that have
// not started are skipped and ctx.Err() is returned.
func ParallelChunks(ctx context.Context, r *Rand, total int, config ParallelConfig, fn func(start, end int, rng *Rand)) error {
	chunks := parallel.Chunks(total, config.ChunkSize)
	if len(chunks) == 0 {
		return nil
	}

	rngs := r.Fork(len(chunks))

	workers := config.NumWorkers
	if workers <= 0 {
		workers = parallel.NumWorkers()
	}
	workers = min(workers, len(chunks))

	return parallel.ForChunks(ctx, chunks, workers, func(c parallel.Chunk) {
		fn(c.Start, c.End, rngs[c.Index])
	})
}
