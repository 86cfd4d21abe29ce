package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

// WorkerPool runs jobFunc on a fixed number of goroutines. results arrive in completion order.
//
// usage: Start, AddJob..., Close, then drain CollectResults while Wait runs in another goroutine.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-wp.jobQueue:
			if !ok {
				return
			}
			res := jobFunc(ctx, job)
			select {
			case wp.results <- res:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Start launches the workers. they stop when the job queue is closed and drained, or when ctx is done.
func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

// Wait blocks until every worker returned, then closes the results channel.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	wp.closeOnce.Do(func() {
		close(wp.jobQueue)
	})
}
