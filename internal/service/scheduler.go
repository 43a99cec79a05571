package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
)

var (
	ErrSchedulerStarted = errors.New("scheduler already started")
	ErrSchedulerStopped = errors.New("scheduler is shut down")
)

// JobRunner processes one job to completion, teardown included.
type JobRunner interface {
	Process(ctx context.Context, jobID int64) error
}

// Scheduler admits jobs without blocking and runs them one at a time in
// submission order. A job that holds the permit always runs to completion.
type Scheduler struct {
	runner JobRunner
	permit *semaphore.Weighted

	mu       sync.Mutex
	pending  []int64
	active   map[int64]int
	started  bool
	stopped  bool
	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(runner JobRunner) *Scheduler {
	return &Scheduler{
		runner: runner,
		permit: semaphore.NewWeighted(1),
		active: make(map[int64]int),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start launches the dispatcher. Cancelling ctx stops the scheduler like Shutdown
// does, but never interrupts the job in flight.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrSchedulerStopped
	}
	if s.started {
		return ErrSchedulerStarted
	}
	s.started = true
	go s.dispatch(ctx)
	return nil
}

// Submit queues jobID and returns the number of jobs waiting, itself included.
// It never blocks on a running job.
func (s *Scheduler) Submit(jobID int64) int {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		logger.Warn.Printf("job %d dropped: scheduler is shut down", jobID)
		return 0
	}
	if s.active[jobID] > 0 {
		logger.Warn.Printf("job %d is already queued or running, scheduling another run", jobID)
	}
	s.active[jobID]++
	s.pending = append(s.pending, jobID)
	depth := len(s.pending)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	logger.Info.Printf("job %d queued (%d waiting)", jobID, depth)
	return depth
}

// Run processes jobID synchronously under the same permit as queued jobs.
func (s *Scheduler) Run(ctx context.Context, jobID int64) error {
	if err := s.permit.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("wait for pipeline slot: %w", err)
	}
	defer s.permit.Release(1)
	return s.execute(ctx, jobID)
}

// Pending returns a snapshot of the queued job ids in dispatch order.
func (s *Scheduler) Pending() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.pending...)
}

// Shutdown stops dispatching and waits up to deadline for the running job.
// Jobs still queued are dropped and logged. A zero deadline waits forever.
func (s *Scheduler) Shutdown(deadline time.Duration) {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		dropped := s.pending
		s.pending = nil
		started := s.started
		s.mu.Unlock()

		close(s.stop)
		if len(dropped) > 0 {
			logger.Warn.Printf("shutdown dropped %d queued jobs: %v", len(dropped), dropped)
		}
		if !started {
			return
		}

		if deadline <= 0 {
			<-s.done
			return
		}
		timer := time.NewTimer(deadline)
		defer timer.Stop()
		select {
		case <-s.done:
		case <-timer.C:
			logger.Warn.Printf("scheduler shutdown deadline reached; a job may still be running")
		}
	})
}

func (s *Scheduler) dispatch(ctx context.Context) {
	defer close(s.done)
	defer s.halt()
	for {
		if ctx.Err() != nil {
			return
		}
		jobID, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}

		// detached: once dispatched, shutdown must not cancel the job
		if err := s.permit.Acquire(context.WithoutCancel(ctx), 1); err != nil {
			logger.Error.Printf("job %d: acquire pipeline slot: %v", jobID, err)
			s.finish(jobID)
			continue
		}
		if err := s.execute(context.WithoutCancel(ctx), jobID); err != nil {
			logger.Error.Printf("job %d failed: %v", jobID, err)
		}
		s.permit.Release(1)
		s.finish(jobID)
	}
}

// halt marks the scheduler stopped once the dispatcher exits so later
// submissions are refused instead of queued forever.
func (s *Scheduler) halt() {
	s.mu.Lock()
	s.stopped = true
	dropped := s.pending
	s.pending = nil
	s.mu.Unlock()
	if len(dropped) > 0 {
		logger.Warn.Printf("dispatcher stopped, dropped %d queued jobs: %v", len(dropped), dropped)
	}
}

// next pops the head of the queue unless the scheduler is stopping.
func (s *Scheduler) next() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || len(s.pending) == 0 {
		return 0, false
	}
	jobID := s.pending[0]
	s.pending = s.pending[1:]
	return jobID, true
}

func (s *Scheduler) finish(jobID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active[jobID] <= 1 {
		delete(s.active, jobID)
		return
	}
	s.active[jobID]--
}

// execute calls the runner and turns a panic into an error.
func (s *Scheduler) execute(ctx context.Context, jobID int64) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %d panicked: %v", jobID, r)
		}
		logger.Info.Printf("job %d finished in %s", jobID, time.Since(start).Round(time.Millisecond))
	}()
	return s.runner.Process(ctx, jobID)
}
