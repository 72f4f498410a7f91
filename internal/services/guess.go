package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
)

const (
	GuessMaxAttempts = 5
	GuessMaxTarget   = 20
	GuessMinTarget   = 1
)

var guessQuitWords = map[string]bool{"desisto": true, "exit": true, "quit": true}

// GuessEngine runs single rounds of the number guessing game
type GuessEngine struct {
	onStats func(domain.GuessStats)
	rng     Rand
	round   *guessRound
	stats   domain.GuessStats
}

type guessRound struct {
	attempts int
	target   int
}

// NewGuessEngine creates an idle engine. onStats, if set, receives the counters after every finished round.
func NewGuessEngine(rng Rand, stats domain.GuessStats, onStats func(domain.GuessStats)) *GuessEngine {
	return &GuessEngine{onStats: onStats, rng: rng, stats: stats}
}

// Start begins a new round, replacing any round in progress
func (g *GuessEngine) Start() []string {
	g.round = &guessRound{target: GuessMinTarget + g.rng.IntN(GuessMaxTarget-GuessMinTarget+1)}
	logging.Logger.Debug("guess round started")
	return []string{
		fmt.Sprintf("guess: I picked a number between %d and %d.", GuessMinTarget, GuessMaxTarget),
		fmt.Sprintf("guess: you have %d attempts. type 'quit' to give up.", GuessMaxAttempts),
	}
}

// Active reports whether a round is in progress
func (g *GuessEngine) Active() bool {
	return g.round != nil
}

// Stats returns the lifetime counters
func (g *GuessEngine) Stats() domain.GuessStats {
	return g.stats
}

// Handle consumes one line of input while a round is active.
// It returns nil when no round is active.
func (g *GuessEngine) Handle(input string) []string {
	if g.round == nil {
		return nil
	}

	word := strings.ToLower(strings.TrimSpace(input))
	if guessQuitWords[word] {
		g.finish(false)
		return []string{"guess: game ended."}
	}

	n, err := strconv.Atoi(word)
	if err != nil || n < GuessMinTarget || n > GuessMaxTarget {
		return []string{fmt.Sprintf("guess: type a number between %d and %d, or 'quit'.", GuessMinTarget, GuessMaxTarget)}
	}

	g.round.attempts++
	attempts, target := g.round.attempts, g.round.target

	switch {
	case n == target:
		g.finish(true)
		return []string{fmt.Sprintf("guess: correct! you got it in %d %s.", attempts, plural(attempts, "attempt"))}
	case attempts >= GuessMaxAttempts:
		g.finish(false)
		return []string{fmt.Sprintf("guess: out of attempts. the number was %d.", target)}
	}

	hint := "higher"
	if n > target {
		hint = "lower"
	}
	left := GuessMaxAttempts - attempts
	return []string{fmt.Sprintf("guess: %s! %d %s left.", hint, left, plural(left, "attempt"))}
}

func (g *GuessEngine) finish(won bool) {
	if won {
		g.stats.Wins++
	} else {
		g.stats.Losses++
	}
	g.round = nil
	if g.onStats != nil {
		g.onStats(g.stats)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
