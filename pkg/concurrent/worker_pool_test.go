package concurrent

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool[int, int](4, 8)
	wp.Start(context.Background(), func(_ context.Context, job int) int {
		return job * job
	})

	go func() {
		for i := 1; i <= 100; i++ {
			wp.AddJob(i)
		}
		wp.Close()
	}()
	go wp.Wait()

	got := make([]int, 0, 100)
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	assert.Len(t, got, 100)
	assert.Equal(t, 1, got[0])
	assert.Equal(t, 10000, got[99])
}

func TestWorkerPoolCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	wp := NewWorkerPool[int, int](2, 0)
	wp.Start(ctx, func(_ context.Context, job int) int {
		return job
	})
	cancel()

	// workers exit without the queue being closed
	wp.Wait()
	_, ok := <-wp.CollectResults()
	assert.False(t, ok)

	wp.Close()
	wp.Close()
}
