// Package worker runs self-play games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Job is one game to be played.
type Job struct {
	Number int   // 1-based game number
	Seed   int64 // Seed for the game's strategies
}

// Outcome is the result of playing a Job.
type Outcome struct {
	Number int
	Record *chess.GameRecord // May be partial when Err is set
	Err    error
}

// PlayFunc plays one job. It runs on a worker goroutine and must not share
// an engine.Game with other calls.
type PlayFunc func(job Job) Outcome

// Pool plays jobs on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	stopOnError bool
	jobs        chan Job
	outcomes    chan Outcome
	play        PlayFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError makes the first failed job stop the pool.
func WithStopOnError() Option {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPool creates a pool that plays jobs with play.
// Default: 1 worker, buffer size of 10.
func NewPool(play PlayFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		play:       play,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.outcomes = make(chan Outcome, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without playing
		}
		out := p.play(job)
		if out.Err != nil && p.stopOnError {
			p.Stop()
		}
		p.outcomes <- out
	}
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop signals workers to skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel and waits for all workers to finish,
// then closes the outcome channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.outcomes)
}

// Results returns the channel outcomes are delivered on, in completion order.
func (p *Pool) Results() <-chan Outcome {
	return p.outcomes
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, plays every job and returns the outcomes ordered
// by game number. Jobs skipped after a stop have no outcome.
func (p *Pool) Run(jobs []Job) []Outcome {
	p.Start()
	go func() {
		for _, job := range jobs {
			if p.IsStopped() {
				break
			}
			p.Submit(job)
		}
		p.Close()
	}()

	outcomes := make([]Outcome, 0, len(jobs))
	for out := range p.Results() {
		outcomes = append(outcomes, out)
	}
	slices.SortFunc(outcomes, func(a, b Outcome) bool {
		return a.Number < b.Number
	})
	return outcomes
}

// Jobs numbers n games from 1, giving game i the seed base+i.
func Jobs(n int, base int64) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{Number: i + 1, Seed: base + int64(i+1)}
	}
	return jobs
}
