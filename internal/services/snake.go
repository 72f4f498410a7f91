package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ports"
)

// DefaultSnakeInterval is the period between two snake ticks
const DefaultSnakeInterval = 420 * time.Millisecond

var snakeDirectionWords = map[string]domain.Direction{
	"w": domain.DirUp, "up": domain.DirUp, "cima": domain.DirUp,
	"s": domain.DirDown, "down": domain.DirDown, "baixo": domain.DirDown,
	"a": domain.DirLeft, "left": domain.DirLeft, "esquerda": domain.DirLeft,
	"d": domain.DirRight, "right": domain.DirRight, "direita": domain.DirRight,
}

var snakeQuitWords = map[string]bool{"desisto": true, "exit": true, "quit": true}

// SnakeEngine runs the tick-driven snake game. Output lines go to the sink
// given at construction, since ticks produce them outside of any input.
type SnakeEngine struct {
	interval  time.Duration
	onStats   func(domain.SnakeStats)
	rng       Rand
	run       *snakeRun
	scheduler ports.Scheduler
	sink      func(string)
	stats     domain.SnakeStats
}

type snakeRun struct {
	body  []domain.Cell // head first
	dir   domain.Direction
	food  *domain.Cell
	score int
	task  ports.Task
}

// SnakeConfig wires a SnakeEngine to its collaborators
type SnakeConfig struct {
	Interval  time.Duration
	OnStats   func(domain.SnakeStats)
	Rand      Rand
	Scheduler ports.Scheduler
	Sink      func(string)
	Stats     domain.SnakeStats
}

// NewSnakeEngine creates an idle engine
func NewSnakeEngine(cfg SnakeConfig) *SnakeEngine {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSnakeInterval
	}
	if cfg.Sink == nil {
		cfg.Sink = func(string) {}
	}
	return &SnakeEngine{
		interval:  cfg.Interval,
		onStats:   cfg.OnStats,
		rng:       cfg.Rand,
		scheduler: cfg.Scheduler,
		sink:      cfg.Sink,
		stats:     cfg.Stats,
	}
}

// Start begins a run. It returns false if a run is already in progress.
func (s *SnakeEngine) Start() bool {
	if s.run != nil {
		return false
	}

	mid := domain.SnakeBoardSize / 2
	run := &snakeRun{
		body: []domain.Cell{{X: mid, Y: mid}, {X: mid - 1, Y: mid}, {X: mid - 2, Y: mid}},
		dir:  domain.DirRight,
	}
	run.food = s.placeFood(run.body)
	s.run = run
	run.task = s.scheduler.Every(s.interval, s.Tick)

	logging.Logger.Debug("snake run started", "interval", s.interval)
	s.sink("snake: steer with w/a/s/d or the arrow keys. type 'quit' to stop.")
	return true
}

// Active reports whether a run is in progress
func (s *SnakeEngine) Active() bool {
	return s.run != nil
}

// Stats returns the lifetime counters
func (s *SnakeEngine) Stats() domain.SnakeStats {
	return s.stats
}

// Score returns the score of the current run, or 0 when idle
func (s *SnakeEngine) Score() int {
	if s.run == nil {
		return 0
	}
	return s.run.score
}

// Steer changes direction immediately. Reversing onto the body is refused.
func (s *SnakeEngine) Steer(dir domain.Direction) bool {
	if s.run == nil {
		return false
	}
	if len(s.run.body) > 1 && dir == s.run.dir.Opposite() {
		return false
	}
	s.run.dir = dir
	return true
}

// HandleInput claims direction and quit words while a run is active
func (s *SnakeEngine) HandleInput(input string) bool {
	if s.run == nil {
		return false
	}
	word := strings.ToLower(strings.TrimSpace(input))
	if snakeQuitWords[word] {
		s.Quit()
		return true
	}
	if dir, ok := snakeDirectionWords[word]; ok {
		s.Steer(dir)
		return true
	}
	return false
}

// Tick advances the run by one step
func (s *SnakeEngine) Tick() {
	run := s.run
	if run == nil {
		return
	}

	next := run.body[0].Step(run.dir)
	if !next.InBounds(domain.SnakeBoardSize) || slices.Contains(run.body, next) {
		s.finish(false)
		return
	}

	if run.food != nil && next == *run.food {
		run.body = append([]domain.Cell{next}, run.body...)
		run.score++
		run.food = s.placeFood(run.body)
		if run.food == nil {
			s.finish(true)
		}
		return
	}

	run.body = append([]domain.Cell{next}, run.body[:len(run.body)-1]...)
}

// Quit ends the run at the player's request; counters are left untouched
func (s *SnakeEngine) Quit() {
	if s.run == nil {
		return
	}
	score := s.run.score
	s.Stop()
	s.sink(fmt.Sprintf("snake: stopped. score %d.", score))
}

// Stop ends the run silently without touching counters
func (s *SnakeEngine) Stop() {
	if s.run == nil {
		return
	}
	s.run.task.Cancel()
	s.run = nil
}

// Board renders the grid as fixed-width rows, or a single placeholder line when idle
func (s *SnakeEngine) Board() []string {
	if s.run == nil {
		return []string{"snake: inactive"}
	}

	grid := make([][]byte, domain.SnakeBoardSize)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", domain.SnakeBoardSize))
	}
	if f := s.run.food; f != nil {
		grid[f.Y][f.X] = '*'
	}
	for i, c := range s.run.body {
		if i == 0 {
			grid[c.Y][c.X] = '@'
		} else {
			grid[c.Y][c.X] = 'o'
		}
	}

	rows := make([]string, len(grid))
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}

func (s *SnakeEngine) finish(won bool) {
	score := s.run.score
	s.stats.Best = max(s.stats.Best, score)
	if won {
		s.stats.Wins++
	} else {
		s.stats.Losses++
	}
	s.Stop()

	if won {
		s.sink(fmt.Sprintf("snake: board filled, you win! score %d.", score))
	} else {
		s.sink(fmt.Sprintf("snake: game over. score %d, best %d.", score, s.stats.Best))
	}
	logging.Logger.Debug("snake run finished", "won", won, "score", score)

	if s.onStats != nil {
		s.onStats(s.stats)
	}
}

// placeFood picks a uniformly random free cell, or nil when the body fills the board
func (s *SnakeEngine) placeFood(body []domain.Cell) *domain.Cell {
	free := make([]domain.Cell, 0, domain.SnakeBoardSize*domain.SnakeBoardSize)
	for y := 0; y < domain.SnakeBoardSize; y++ {
		for x := 0; x < domain.SnakeBoardSize; x++ {
			c := domain.Cell{X: x, Y: y}
			if !slices.Contains(body, c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return nil
	}
	c := free[s.rng.IntN(len(free))]
	return &c
}
