package dynamo

import (
	"context"
	"sync"
)

// Job pairs a simulator with its initial state.
type Job struct {
	Sim *Simulator
	X0  State
}

// RunParallel runs independent simulators concurrently. Each job must own its
// controller; results are returned in job order and the first error wins.
func RunParallel(ctx context.Context, jobs []Job, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = jobs[idx].Sim.Run(ctx, jobs[idx].X0, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
