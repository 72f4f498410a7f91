package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ports"
)

// Snapshot keys
const (
	KeyDock       = "dock"
	KeyGuessStats = "stats.guess"
	KeyNotes      = "notes"
	KeySnakeStats = "stats.snake"
	KeyTheme      = "theme"
)

const storeTimeout = 2 * time.Second

// PreferencesService keeps the dock, theme, notes and game counters of a desktop
// in memory and mirrors every change to the snapshot store.
// Store failures are logged and otherwise ignored.
type PreferencesService struct {
	dock  []domain.AppID
	guess domain.GuessStats
	mu    sync.Mutex
	notes string
	snake domain.SnakeStats
	store ports.SnapshotStore
	theme domain.ThemeName
}

// NewPreferencesService loads saved preferences. A nil store keeps everything in memory.
func NewPreferencesService(ctx context.Context, store ports.SnapshotStore, defaultTheme domain.ThemeName) *PreferencesService {
	if _, ok := domain.ParseTheme(string(defaultTheme)); !ok {
		defaultTheme = domain.ThemeLight
	}
	p := &PreferencesService{
		dock:  slices.Clone(domain.DefaultDock),
		store: store,
		theme: defaultTheme,
	}
	if store == nil {
		return p
	}

	var dock []domain.AppID
	if p.load(ctx, KeyDock, &dock) {
		p.dock = p.dock[:0]
		for _, app := range dock {
			if domain.IsValidApp(app) && !slices.Contains(p.dock, app) {
				p.dock = append(p.dock, app)
			}
		}
	}

	var theme domain.ThemeName
	if p.load(ctx, KeyTheme, &theme) {
		if parsed, ok := domain.ParseTheme(string(theme)); ok {
			p.theme = parsed
		}
	}

	p.load(ctx, KeyNotes, &p.notes)
	p.load(ctx, KeyGuessStats, &p.guess)
	p.load(ctx, KeySnakeStats, &p.snake)
	return p
}

// Dock returns the pinned apps in order
func (p *PreferencesService) Dock() []domain.AppID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.dock)
}

// Pin appends app to the dock. Unknown or already pinned apps are ignored.
func (p *PreferencesService) Pin(app domain.AppID) bool {
	p.mu.Lock()
	if !domain.IsValidApp(app) || slices.Contains(p.dock, app) {
		p.mu.Unlock()
		return false
	}
	p.dock = append(p.dock, app)
	dock := slices.Clone(p.dock)
	p.mu.Unlock()

	p.save(KeyDock, dock)
	return true
}

// Unpin removes app from the dock
func (p *PreferencesService) Unpin(app domain.AppID) bool {
	p.mu.Lock()
	idx := slices.Index(p.dock, app)
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	p.dock = slices.Delete(p.dock, idx, idx+1)
	dock := slices.Clone(p.dock)
	p.mu.Unlock()

	p.save(KeyDock, dock)
	return true
}

// Theme returns the current palette name
func (p *PreferencesService) Theme() domain.ThemeName {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme switches the palette
func (p *PreferencesService) SetTheme(theme domain.ThemeName) {
	p.mu.Lock()
	p.theme = theme
	p.mu.Unlock()
	p.save(KeyTheme, theme)
}

// Notes returns the saved note
func (p *PreferencesService) Notes() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notes
}

// SetNotes replaces the note
func (p *PreferencesService) SetNotes(text string) {
	p.mu.Lock()
	p.notes = text
	p.mu.Unlock()
	p.save(KeyNotes, text)
}

func (p *PreferencesService) GuessStats() domain.GuessStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.guess
}

func (p *PreferencesService) SaveGuessStats(stats domain.GuessStats) {
	p.mu.Lock()
	p.guess = stats
	p.mu.Unlock()
	p.save(KeyGuessStats, stats)
}

func (p *PreferencesService) SnakeStats() domain.SnakeStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snake
}

func (p *PreferencesService) SaveSnakeStats(stats domain.SnakeStats) {
	p.mu.Lock()
	p.snake = stats
	p.mu.Unlock()
	p.save(KeySnakeStats, stats)
}

func (p *PreferencesService) load(ctx context.Context, key string, v any) bool {
	if err := p.store.Load(ctx, key, v); err != nil {
		if !errors.Is(err, domain.ErrSnapshotNotFound) {
			logging.Logger.Warn("Failed to load snapshot", "key", key, "error", err)
		}
		return false
	}
	return true
}

func (p *PreferencesService) save(key string, v any) {
	if p.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := p.store.Save(ctx, key, v); err != nil {
		logging.Logger.Warn("Failed to save snapshot", "key", key, "error", err)
	}
}
