package clock

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/ports"
)

// TaskDueMsg is delivered to the bubbletea loop when a scheduled task's period elapses
type TaskDueMsg struct {
	ID int
}

// TeaScheduler implements ports.Scheduler on top of tea.Tick so that every
// callback runs inside Update, on the same goroutine as all other state changes.
type TeaScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending []*teaTask
	tasks   map[int]*teaTask
}

var _ ports.Scheduler = (*TeaScheduler)(nil)

type teaTask struct {
	fn        func()
	id        int
	interval  time.Duration
	scheduler *TeaScheduler
	active    bool
}

// NewTeaScheduler creates an empty scheduler
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{tasks: make(map[int]*teaTask)}
}

// Every registers fn. The first tick is armed by the next Drain.
func (s *TeaScheduler) Every(interval time.Duration, fn func()) ports.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	task := &teaTask{
		active:    true,
		fn:        fn,
		id:        s.nextID,
		interval:  interval,
		scheduler: s,
	}
	s.tasks[task.id] = task
	s.pending = append(s.pending, task)
	return task
}

// Drain returns tick commands for tasks registered since the last call
func (s *TeaScheduler) Drain() []tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, task := range s.pending {
		if task.active {
			cmds = append(cmds, task.tick())
		}
	}
	s.pending = nil
	return cmds
}

// Fire runs the task identified by id and re-arms it while it stays active.
// Ticks that arrive after cancellation are dropped.
func (s *TeaScheduler) Fire(id int) tea.Cmd {
	s.mu.Lock()
	task, ok := s.tasks[id]
	s.mu.Unlock()
	if !ok || !task.Active() {
		return nil
	}

	task.fn()

	if !task.Active() {
		return nil
	}
	return task.tick()
}

// ActiveCount returns the number of tasks still scheduled
func (s *TeaScheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (t *teaTask) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TaskDueMsg{ID: id}
	})
}

func (t *teaTask) Cancel() {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()
	t.active = false
	delete(s.tasks, t.id)
}

func (t *teaTask) Active() bool {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.active
}
