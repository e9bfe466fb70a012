package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// recordFunc returns a play function that produces an empty record.
func recordFunc() PlayFunc {
	return func(job Job) Outcome {
		return Outcome{Number: job.Number, Record: &chess.GameRecord{Number: job.Number}}
	}
}

// countingFunc returns a play function that increments a counter.
func countingFunc(counter *int32) PlayFunc {
	return func(job Job) Outcome {
		atomic.AddInt32(counter, 1)
		return Outcome{Number: job.Number}
	}
}

// collectResults drains the outcome channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func TestPoolBasic(t *testing.T) {
	var played int32
	pool := NewPool(countingFunc(&played), WithWorkers(4))
	pool.Start()

	const numJobs = 10
	for i := 1; i <= numJobs; i++ {
		pool.Submit(Job{Number: i, Seed: int64(i)})
	}

	go pool.Close()

	if got := collectResults(pool); got != numJobs {
		t.Errorf("results = %d; want %d", got, numJobs)
	}
	if got := atomic.LoadInt32(&played); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

func TestPoolEarlyStop(t *testing.T) {
	var played int32
	slow := func(job Job) Outcome {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&played, 1)
		return Outcome{Number: job.Number}
	}

	pool := NewPool(slow, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numJobs = 50
	for i := 1; i <= numJobs; i++ {
		pool.Submit(Job{Number: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if n := atomic.LoadInt32(&played); n >= numJobs {
		t.Logf("early stop may not have prevented all games: %d played", n)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(recordFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestPoolTrySubmit(t *testing.T) {
	slow := func(job Job) Outcome {
		time.Sleep(100 * time.Millisecond)
		return Outcome{Number: job.Number}
	}

	pool := NewPool(slow, WithBufferSize(2))
	pool.Start()

	if !pool.TrySubmit(Job{Number: 1}) {
		t.Error("first TrySubmit should succeed")
	}
	if !pool.TrySubmit(Job{Number: 2}) {
		t.Error("second TrySubmit should succeed")
	}

	// Third might fail if buffer is full (timing-dependent, just verify no panic)
	pool.TrySubmit(Job{Number: 3})

	pool.Stop()
	if pool.TrySubmit(Job{Number: 4}) {
		t.Error("TrySubmit after Stop should return false")
	}

	go pool.Close()
	collectResults(pool)
}

func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		workers     int
		bufferSize  int
		stopOnError bool
	}{
		{"defaults", nil, 1, 10, false},
		{"with workers", []Option{WithWorkers(4)}, 4, 10, false},
		{"with buffer size", []Option{WithBufferSize(50)}, 1, 50, false},
		{"with multiple options", []Option{WithWorkers(8), WithBufferSize(100), WithStopOnError()}, 8, 100, true},
		{"zero workers ignored", []Option{WithWorkers(0)}, 1, 10, false},
		{"negative workers ignored", []Option{WithWorkers(-1)}, 1, 10, false},
		{"invalid buffer size ignored", []Option{WithBufferSize(-5)}, 1, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(recordFunc(), tt.opts...)
			testutil.AssertEqual(t, pool.NumWorkers(), tt.workers)
			testutil.AssertEqual(t, pool.bufferSize, tt.bufferSize)
			testutil.AssertEqual(t, pool.stopOnError, tt.stopOnError)
		})
	}
}

func TestPoolRun_OrdersByNumber(t *testing.T) {
	delayed := func(job Job) Outcome {
		if job.Number%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return Outcome{Number: job.Number, Record: &chess.GameRecord{Number: job.Number}}
	}

	pool := NewPool(delayed, WithWorkers(4), WithBufferSize(3))
	outcomes := pool.Run(Jobs(10, 0))

	if len(outcomes) != 10 {
		t.Fatalf("received %d outcomes; want 10", len(outcomes))
	}
	for i, out := range outcomes {
		testutil.AssertEqual(t, out.Number, i+1)
		testutil.AssertEqual(t, out.Record.Number, i+1)
	}
}

func TestPoolRun_StopOnError(t *testing.T) {
	var played int32
	failing := func(job Job) Outcome {
		atomic.AddInt32(&played, 1)
		if job.Number == 1 {
			return Outcome{Number: job.Number, Err: fmt.Errorf("game %d failed", job.Number)}
		}
		time.Sleep(5 * time.Millisecond)
		return Outcome{Number: job.Number}
	}

	pool := NewPool(failing, WithStopOnError())
	outcomes := pool.Run(Jobs(100, 0))

	if !pool.IsStopped() {
		t.Error("pool should stop after a failed game")
	}
	if len(outcomes) == 0 || outcomes[0].Err == nil {
		t.Fatalf("first outcome should carry the failure: %+v", outcomes)
	}
	if n := atomic.LoadInt32(&played); n >= 100 {
		t.Errorf("played %d games after a failure; want fewer than 100", n)
	}
}

func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingFunc(&counter), WithWorkers(8), WithBufferSize(50))

	const numJobs = 100
	outcomes := pool.Run(Jobs(numJobs, 42))

	testutil.AssertEqual(t, len(outcomes), numJobs)
	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

func TestJobs(t *testing.T) {
	testutil.AssertEqual(t, Jobs(3, 10), []Job{
		{Number: 1, Seed: 11},
		{Number: 2, Seed: 12},
		{Number: 3, Seed: 13},
	})
	testutil.AssertEqual(t, Jobs(0, 10), []Job{})
}
