package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskfolio/deskfolio/internal/adapters/clock"
	"github.com/deskfolio/deskfolio/internal/domain"
)

type snakeFixture struct {
	engine    *SnakeEngine
	lines     []string
	saved     []domain.SnakeStats
	scheduler *clock.ManualScheduler
}

func newSnakeFixture(t *testing.T, stats domain.SnakeStats) *snakeFixture {
	t.Helper()
	f := &snakeFixture{scheduler: clock.NewManualScheduler()}
	f.engine = NewSnakeEngine(SnakeConfig{
		OnStats:   func(s domain.SnakeStats) { f.saved = append(f.saved, s) },
		Rand:      &seqRand{values: []int{0}},
		Scheduler: f.scheduler,
		Sink:      func(line string) { f.lines = append(f.lines, line) },
		Stats:     stats,
	})
	return f
}

// place starts a run and overrides its state
func (f *snakeFixture) place(t *testing.T, body []domain.Cell, dir domain.Direction, food *domain.Cell, score int) {
	t.Helper()
	require.True(t, f.engine.Start())
	f.engine.run.body = body
	f.engine.run.dir = dir
	f.engine.run.food = food
	f.engine.run.score = score
}

func TestSnake_StartLayout(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})

	require.True(t, f.engine.Start())

	run := f.engine.run
	assert.Equal(t, []domain.Cell{{X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}, run.body)
	assert.Equal(t, domain.DirRight, run.dir)
	assert.Equal(t, 0, run.score)
	require.NotNil(t, run.food)
	assert.Equal(t, domain.Cell{X: 0, Y: 0}, *run.food)
	assert.Equal(t, 1, f.scheduler.ActiveCount())
	assert.False(t, f.engine.Start(), "second start is refused")
}

func TestSnake_EatingGrowsAndPlacesNewFood(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	f.place(t, []domain.Cell{{X: 1, Y: 1}, {X: 0, Y: 1}}, domain.DirRight, &domain.Cell{X: 2, Y: 1}, 0)

	f.engine.Tick()

	run := f.engine.run
	require.NotNil(t, run)
	assert.Len(t, run.body, 3)
	assert.Equal(t, domain.Cell{X: 2, Y: 1}, run.body[0])
	assert.Equal(t, 1, run.score)
	require.NotNil(t, run.food)
	assert.NotEqual(t, domain.Cell{X: 2, Y: 1}, *run.food)
	assert.NotContains(t, run.body, *run.food)
}

func TestSnake_MoveWithoutFoodKeepsLength(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	f.place(t, []domain.Cell{{X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}, domain.DirDown, &domain.Cell{X: 9, Y: 9}, 0)

	f.engine.Tick()

	assert.Equal(t, []domain.Cell{{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 2, Y: 3}}, f.engine.run.body)
}

func TestSnake_WallIsALoss(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{Best: 2})
	f.place(t, []domain.Cell{{X: 11, Y: 0}}, domain.DirRight, &domain.Cell{X: 5, Y: 5}, 4)

	f.engine.Tick()

	assert.False(t, f.engine.Active())
	assert.Equal(t, []string{"snake: inactive"}, f.engine.Board())
	assert.Equal(t, domain.SnakeStats{Best: 4, Losses: 1}, f.engine.Stats())
	assert.Equal(t, []domain.SnakeStats{{Best: 4, Losses: 1}}, f.saved)
	assert.Contains(t, f.lines[len(f.lines)-1], "game over")
}

func TestSnake_SelfCollisionIsALoss(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{Best: 9})
	body := []domain.Cell{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	f.place(t, body, domain.DirDown, &domain.Cell{X: 8, Y: 8}, 1)

	f.engine.Tick()

	assert.False(t, f.engine.Active())
	assert.Equal(t, domain.SnakeStats{Best: 9, Losses: 1}, f.engine.Stats())
}

func TestSnake_FillingTheBoardIsAWin(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	var body []domain.Cell
	body = append(body, domain.Cell{X: 1, Y: 0})
	for y := 0; y < domain.SnakeBoardSize; y++ {
		for x := 0; x < domain.SnakeBoardSize; x++ {
			c := domain.Cell{X: x, Y: y}
			if c != (domain.Cell{X: 0, Y: 0}) && c != (domain.Cell{X: 1, Y: 0}) {
				body = append(body, c)
			}
		}
	}
	f.place(t, body, domain.DirLeft, &domain.Cell{X: 0, Y: 0}, 141)

	f.engine.Tick()

	assert.False(t, f.engine.Active())
	assert.Equal(t, domain.SnakeStats{Best: 142, Wins: 1}, f.engine.Stats())
	assert.Contains(t, f.lines[len(f.lines)-1], "you win")
}

func TestSnake_Steering(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	f.place(t, []domain.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}, domain.DirRight, nil, 0)

	assert.False(t, f.engine.Steer(domain.DirLeft), "reversal refused")
	assert.True(t, f.engine.Steer(domain.DirUp))
	assert.Equal(t, domain.DirUp, f.engine.run.dir)

	f.engine.run.body = []domain.Cell{{X: 5, Y: 5}}
	assert.True(t, f.engine.Steer(domain.DirDown), "single segment may reverse")
}

func TestSnake_HandleInputClaimsOnlyGameWords(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	assert.False(t, f.engine.HandleInput("w"), "idle engine claims nothing")

	f.engine.Start()
	assert.True(t, f.engine.HandleInput("W"))
	assert.Equal(t, domain.DirUp, f.engine.run.dir)
	assert.True(t, f.engine.HandleInput("esquerda"))
	assert.Equal(t, domain.DirLeft, f.engine.run.dir)
	assert.False(t, f.engine.HandleInput("help"))
	assert.False(t, f.engine.HandleInput("clear"))

	assert.True(t, f.engine.HandleInput("quit"))
	assert.False(t, f.engine.Active())
}

func TestSnake_QuitAndStopLeaveCountersAlone(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{Best: 1, Wins: 2, Losses: 3})
	f.place(t, []domain.Cell{{X: 5, Y: 5}}, domain.DirRight, nil, 7)

	f.engine.Quit()

	assert.Equal(t, domain.SnakeStats{Best: 1, Wins: 2, Losses: 3}, f.engine.Stats())
	assert.Empty(t, f.saved)
	assert.Equal(t, "snake: stopped. score 7.", f.lines[len(f.lines)-1])

	f.engine.Start()
	count := len(f.lines)
	f.engine.Stop()
	assert.Len(t, f.lines, count, "stop is silent")
}

func TestSnake_NoTaskLeftAfterAnyTerminalTransition(t *testing.T) {
	tests := []struct {
		name string
		end  func(f *snakeFixture)
	}{
		{"loss", func(f *snakeFixture) {
			f.engine.run.body = []domain.Cell{{X: 11, Y: 0}}
			f.engine.run.dir = domain.DirRight
			f.engine.Tick()
		}},
		{"win", func(f *snakeFixture) {
			var body []domain.Cell
			for y := 0; y < domain.SnakeBoardSize; y++ {
				for x := 0; x < domain.SnakeBoardSize; x++ {
					if x != 11 || y != 11 {
						body = append(body, domain.Cell{X: x, Y: y})
					}
				}
			}
			body[0], body[len(body)-1] = body[len(body)-1], body[0]
			f.engine.run.body = body
			f.engine.run.dir = domain.DirRight
			f.engine.run.food = &domain.Cell{X: 11, Y: 11}
			f.engine.Tick()
		}},
		{"quit", func(f *snakeFixture) { f.engine.Quit() }},
		{"stop", func(f *snakeFixture) { f.engine.Stop() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSnakeFixture(t, domain.SnakeStats{})
			require.True(t, f.engine.Start())
			require.Equal(t, 1, f.scheduler.ActiveCount())

			tt.end(f)

			assert.False(t, f.engine.Active())
			assert.Equal(t, 0, f.scheduler.ActiveCount())
		})
	}
}

func TestSnake_SchedulerDrivesTicks(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	f.engine.Start()
	f.engine.run.food = &domain.Cell{X: 0, Y: 11}

	f.scheduler.Advance(DefaultSnakeInterval)
	assert.Equal(t, domain.Cell{X: 7, Y: 6}, f.engine.run.body[0])

	// 4 more ticks reach the wall at x=11, the 5th leaves the board
	f.scheduler.Advance(6 * DefaultSnakeInterval)
	assert.False(t, f.engine.Active())
	assert.Equal(t, 0, f.scheduler.ActiveCount())

	f.scheduler.Advance(time.Second)
	assert.Equal(t, 1, f.engine.Stats().Losses, "no tick after the run ended")
}

func TestSnake_Board(t *testing.T) {
	f := newSnakeFixture(t, domain.SnakeStats{})
	assert.Equal(t, []string{"snake: inactive"}, f.engine.Board())

	f.place(t, []domain.Cell{{X: 2, Y: 0}, {X: 1, Y: 0}}, domain.DirRight, &domain.Cell{X: 0, Y: 1}, 0)
	rows := f.engine.Board()

	require.Len(t, rows, domain.SnakeBoardSize)
	for _, row := range rows {
		assert.Len(t, row, domain.SnakeBoardSize)
	}
	assert.Equal(t, ".o@.........", rows[0])
	assert.Equal(t, "*"+strings.Repeat(".", 11), rows[1])
}
