// Package scheduler runs named deferred tasks and interruptible waits.
//
// Every task and wait is bound to the scheduler's lifetime: Shutdown cancels
// whatever is still pending, so a process stop abandons pending work instead
// of leaking goroutines.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// ErrAlreadyScheduled is returned when a task with the same name is pending.
var ErrAlreadyScheduled = errors.New("task is already scheduled")

// ErrStopped is returned when the scheduler has been shut down.
var ErrStopped = errors.New("scheduler is stopped")

// Task is the body of a deferred task. The context is cancelled on Shutdown.
type Task func(ctx context.Context)

type entry struct {
	cancel context.CancelFunc
	due    time.Time
}

// Scheduler tracks pending tasks. It is safe for concurrent use.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	tasks map[string]*entry
	wg    sync.WaitGroup
}

// New creates a running Scheduler.
func New() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[string]*entry),
	}
}

// After runs task once d has elapsed. Names must be unique among pending tasks.
func (s *Scheduler) After(name string, d time.Duration, task Task) error {
	if s.ctx.Err() != nil {
		return ErrStopped
	}

	s.mu.Lock()
	if _, exists := s.tasks[name]; exists {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyScheduled, name)
	}
	ctx, cancel := context.WithCancel(s.ctx)
	e := &entry{cancel: cancel, due: time.Now().Add(d)}
	s.tasks[name] = e
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.remove(name, e)

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			task(ctx)
		case <-ctx.Done():
			slog.Debug("cancelled scheduled task", "task", name)
		}
	}()

	return nil
}

// Sleep blocks for d. It returns early with an error when ctx is cancelled or
// the scheduler shuts down.
func (s *Scheduler) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return s.ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ctx.Done():
		return ErrStopped
	}
}

// Cancel stops a pending task. It reports whether a task was found.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	e, ok := s.tasks[name]
	if ok {
		delete(s.tasks, name)
	}
	s.mu.Unlock()

	if ok {
		e.cancel()
	}
	return ok
}

// Pending returns the names of tasks that have not run yet, sorted.
func (s *Scheduler) Pending() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shutdown cancels all pending tasks and sleeps and waits for running
// task bodies to return.
func (s *Scheduler) Shutdown() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) remove(name string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tasks[name] == e {
		delete(s.tasks, name)
	}
	e.cancel()
}
