package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run runs the workers one after another.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		if ctx.Err() != nil {
			return
		}
		worker.Run(ctx)
	}
}

// Start runs the workers in the background. The returned channel is closed
// once every worker has returned.
func (w *Workers) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	return done
}
