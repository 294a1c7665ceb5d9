package telemetry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Period returns the delay before a task's next run. It is called once per
// tick so jittered tasks can redraw their interval.
type Period func() time.Duration

// Fixed returns a Period that always yields d.
func Fixed(d time.Duration) Period {
	return func() time.Duration { return d }
}

// Task is the handle of a repeating job started by a Scheduler.
type Task struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
	runs   atomic.Int64
}

// Name returns the name the task was started with.
func (t *Task) Name() string { return t.name }

// Runs returns how many times the task body has executed.
func (t *Task) Runs() int64 { return t.runs.Load() }

// Done is closed once the task goroutine has exited.
func (t *Task) Done() <-chan struct{} { return t.done }

// Stop cancels the task and waits for an in-flight run to finish. It is safe
// to call more than once.
func (t *Task) Stop() {
	t.cancel()
	<-t.done
}

// Scheduler runs repeating tasks on their own goroutines until they are
// stopped or the scheduler's context is cancelled.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu    sync.Mutex
	tasks []*Task
}

// NewScheduler returns a scheduler bound to ctx.
func NewScheduler(ctx context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// Every starts fn after each period and returns immediately. A nil or
// non-positive period falls back to one second.
func (s *Scheduler) Every(name string, period Period, fn func()) *Task {
	ctx, cancel := context.WithCancel(s.ctx)
	t := &Task{name: name, cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(t.done)

		timer := time.NewTimer(next(period))
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			// A stop racing with the timer wins.
			if ctx.Err() != nil {
				return
			}
			fn()
			t.runs.Add(1)
			timer.Reset(next(period))
		}
	}()
	return t
}

// Tasks returns the tasks started so far.
func (s *Scheduler) Tasks() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// StopAll cancels every task and waits for them to exit.
func (s *Scheduler) StopAll() {
	s.cancel()
	s.wg.Wait()
}

// Wait blocks until every task has exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func next(period Period) time.Duration {
	if period == nil {
		return time.Second
	}
	if d := period(); d > 0 {
		return d
	}
	return time.Second
}
