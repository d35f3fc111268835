package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/cartinhas/pkg/queue"
)

var echoed atomic.Int32

type echoJob struct {
	OrderID uint
}

func (j *echoJob) Handle() error {
	echoed.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	return errors.New("always fails")
}

func init() {
	queue.StartWorkers(context.Background(), 2)
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
}

func TestDispatchAndProcess(t *testing.T) {
	before := echoed.Load()
	if err := queue.Dispatch(&echoJob{OrderID: 1}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for echoed.Load() == before {
		if time.Now().After(deadline) {
			t.Fatal("job was not processed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestExhaustedJobIsRecorded(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	// One attempt plus its backoff.
	deadline := time.Now().Add(4 * time.Second)
	for len(queue.FailedJobs()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected a failed job to be recorded")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			defer wg.Done()
			queue.Dispatch(&echoJob{OrderID: uint(i)}) //nolint:errcheck
		}(i)
	}
	wg.Wait()
}
