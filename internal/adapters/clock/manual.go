package clock

import (
	"sync"
	"time"

	"github.com/deskfolio/deskfolio/internal/ports"
)

// ManualScheduler is a ports.Scheduler driven explicitly by tests
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

var _ ports.Scheduler = (*ManualScheduler)(nil)

type manualTask struct {
	elapsed   time.Duration
	fn        func()
	interval  time.Duration
	scheduler *ManualScheduler
	active    bool
}

// NewManualScheduler creates a scheduler whose time only moves on Advance or Tick
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &manualTask{active: true, fn: fn, interval: interval, scheduler: s}
	s.tasks = append(s.tasks, task)
	return task
}

// Tick fires every active task once, in registration order
func (s *ManualScheduler) Tick() {
	for _, task := range s.snapshot() {
		if task.Active() {
			task.fn()
		}
	}
}

// Advance moves time forward by d, firing each task once per elapsed interval
func (s *ManualScheduler) Advance(d time.Duration) {
	for _, task := range s.snapshot() {
		if !task.Active() || task.interval <= 0 {
			continue
		}
		task.elapsed += d
		for task.elapsed >= task.interval && task.Active() {
			task.elapsed -= task.interval
			task.fn()
		}
	}
}

// ActiveCount returns how many tasks are still scheduled
func (s *ManualScheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, task := range s.tasks {
		if task.active {
			count++
		}
	}
	return count
}

func (s *ManualScheduler) snapshot() []*manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*manualTask(nil), s.tasks...)
}

func (t *manualTask) Cancel() {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	t.active = false
}

func (t *manualTask) Active() bool {
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	return t.active
}
