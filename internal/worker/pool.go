package worker

import (
	"context"
	"sync"
)

// Task is one unit of fan-out work within a pipeline phase
type Task interface {
	Run(ctx context.Context) Outcome
}

// Outcome is the settled result of one task
type Outcome interface {
	Err() error
}

// Pool executes a phase's tasks concurrently with bounded parallelism and
// joins all outcomes before returning. Outcomes are index-aligned with the
// input tasks, so callers correlate results by position, never by arrival
// order.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given parallelism bound
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all tasks and returns once every task has settled. A cancelled
// context settles not-yet-started tasks with a CancelledOutcome; tasks
// already running observe the cancellation through their own context.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Outcome {
	if len(tasks) == 0 {
		return []Outcome{}
	}

	outcomes := make([]Outcome, len(tasks))
	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(idx int, t Task) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				outcomes[idx] = CancelledOutcome{Cause: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			outcomes[idx] = t.Run(ctx)
		}(i, task)
	}

	wg.Wait()
	return outcomes
}

// CancelledOutcome settles a task that never started because the run was
// cancelled.
type CancelledOutcome struct {
	Cause error
}

// Err returns the cancellation cause
func (o CancelledOutcome) Err() error {
	return o.Cause
}

// TaskFunc adapts a plain function to the Task interface
type TaskFunc func(ctx context.Context) Outcome

// Run executes the function
func (f TaskFunc) Run(ctx context.Context) Outcome {
	return f(ctx)
}
