package dataset

import (
	"sync"

	"github.com/Jeffail/tunny"
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/signal"
)

type decodeJob struct {
	ctx runctx.RunContext
	idx int
}

type decodeResult struct {
	tensor *signal.Tensor
	err    error
}

// Loader decodes batches of items on a bounded worker pool, preserving input
// order in its outputs.
type Loader struct {
	tf   Transform
	pool *tunny.Pool
}

// NewLoader builds a loader over the transform. A workers count of 0 takes
// the configured default.
func NewLoader(tf Transform, workers int) *Loader {
	if workers <= 0 {
		workers = config.Get().Decode.NumWorkers
	}
	l := &Loader{tf: tf}
	l.pool = tunny.NewFunc(workers, func(payload interface{}) interface{} {
		job := payload.(decodeJob)
		t, err := tf.Encode(job.ctx, job.idx)
		return decodeResult{tensor: t, err: err}
	})
	return l
}

// Batch decodes the given indices. Results line up with the input slice; the
// first decode error aborts the batch.
func (l *Loader) Batch(ctx runctx.RunContext, indices []int) ([]*signal.Tensor, error) {
	results := make([]decodeResult, len(indices))

	wg := &sync.WaitGroup{}
	wg.Add(len(indices))
	for i, idx := range indices {
		go func(i int, idx int) {
			defer wg.Done()
			results[i] = l.pool.Process(decodeJob{ctx: ctx, idx: idx}).(decodeResult)
		}(i, idx)
	}
	wg.Wait()

	tensors := make([]*signal.Tensor, len(indices))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		tensors[i] = r.tensor
	}
	return tensors, nil
}

func (l *Loader) Close() {
	l.pool.Close()
}
