package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SlotMaster_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

// blockingJob holds a worker until its context ends
type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize, 0)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(&testJob{executed: &executed, err: errors.New("boom")}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_EnqueueWhenFull(t *testing.T) {
	var executed int32
	pool := NewPool(0, 1, 0)

	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))

	pool.Stop()
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "a stopped pool accepts nothing")
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	pool := NewPool(1, 1, time.Hour)
	pool.Start()

	job := &blockingJob{started: make(chan struct{})}
	assert.True(t, pool.Enqueue(job))
	<-job.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not cancel the running job")
	}

	// Idempotent
	pool.Stop()
}

func TestPool_JobTimeout(t *testing.T) {
	pool := NewPool(1, 1, 20*time.Millisecond)
	pool.Start()
	defer pool.Stop()

	job := &blockingJob{started: make(chan struct{})}
	assert.True(t, pool.Enqueue(job))
	<-job.started

	// The timed out job frees the worker for the next one
	var executed int32
	assert.Eventually(t, func() bool {
		return pool.Enqueue(&testJob{executed: &executed}) && atomic.LoadInt32(&executed) > 0
	}, time.Second, 10*time.Millisecond)
}
