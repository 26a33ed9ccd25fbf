// Package scheduler drives the engines and executors on fixed intervals.
// Each job holds a process-local capacity-1 gate: a tick that fires while the
// previous run is still executing waits for it and then performs no work of
// its own, so at most one pass of a job is ever in flight.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nftmakerio/masumi-payment-service/internal/clock"
)

// Job is one periodically executed unit of work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type jobFunc struct {
	name string
	run  func(ctx context.Context) error
}

func (j jobFunc) Name() string                  { return j.name }
func (j jobFunc) Run(ctx context.Context) error { return j.run(ctx) }

// NewJob adapts a bare run function into a Job.
func NewJob(name string, run func(ctx context.Context) error) Job {
	return jobFunc{name: name, run: run}
}

// Runner executes one job on its interval.
type Runner struct {
	job      Job
	interval time.Duration
	logger   *zap.Logger
	gate     chan struct{}
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewRunner builds a runner for the job.
func NewRunner(job Job, interval time.Duration, logger *zap.Logger) *Runner {
	return &Runner{
		job:      job,
		interval: interval,
		logger:   logger.With(zap.String("job", job.Name())),
		gate:     make(chan struct{}, 1),
		sleep:    clock.SleepWithContext,
	}
}

// Tick executes one pass of the job, or waits for an in-flight pass to
// finish without starting another. The returned flag distinguishes "this
// call did the work" from "someone else already did this tick".
func (r *Runner) Tick(ctx context.Context) (bool, error) {
	select {
	case r.gate <- struct{}{}:
		defer func() { <-r.gate }()
		return true, r.job.Run(ctx)
	default:
	}

	// A pass is in flight. Newly-eligible work arriving now is picked up on
	// the next tick, not by the run we wait on.
	select {
	case r.gate <- struct{}{}:
		<-r.gate
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Run ticks the job until the context is canceled. A failed pass is logged
// and the schedule continues.
func (r *Runner) Run(ctx context.Context) error {
	for {
		started := time.Now()
		ran, err := r.Tick(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			r.logger.Error("job pass failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		case ran:
			r.logger.Debug("job pass finished", zap.Duration("elapsed", time.Since(started)))
		}

		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

// Scheduler owns a set of runners and runs them concurrently.
type Scheduler struct {
	logger  *zap.Logger
	runners []*Runner
}

func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Register adds a job with its own interval.
func (s *Scheduler) Register(job Job, interval time.Duration) {
	s.runners = append(s.runners, NewRunner(job, interval, s.logger))
}

// Run starts every registered runner and blocks until the context is
// canceled and all runners have stopped.
func (s *Scheduler) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, runner := range s.runners {
		wg.Add(1)
		go func(r *Runner) {
			defer wg.Done()
			if err := r.Run(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("runner stopped unexpectedly", zap.Error(err))
			}
		}(runner)
	}
	wg.Wait()
	return ctx.Err()
}
