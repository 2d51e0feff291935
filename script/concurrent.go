package script

import (
	"bytes"
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// RunConcurrently executes the scripts on a pool of workerCount goroutines against the same queue, which therefore
// has to be safe for concurrent use. It returns the output of every script in the order of the scripts and the
// joined errors of the failed ones.
func (r *Runner[T]) RunConcurrently(ctx context.Context, scripts [][]Command, workerCount int) ([]string, error) {
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to create worker pool")
	}
	defer pool.Release()

	outputs := make([]string, len(scripts))
	errs := make([]error, len(scripts))

	var wg sync.WaitGroup
	for i, commands := range scripts {
		wg.Add(1)

		i, commands := i, commands
		if err := pool.Submit(func() {
			defer wg.Done()

			var output bytes.Buffer
			if err := r.Run(ctx, commands, &output); err != nil {
				errs[i] = ierrors.Wrapf(err, "script %d", i)
			}

			outputs[i] = output.String()
		}); err != nil {
			wg.Done()
			errs[i] = ierrors.Wrapf(err, "failed to submit script %d", i)
		}
	}
	wg.Wait()

	r.logger.LogDebug("scripts finished", "scripts", len(scripts), "workers", workerCount, "executed", r.Executed())

	return outputs, ierrors.Join(errs...)
}
