package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/deskfolio/deskfolio/internal/domain"
	portsmocks "github.com/deskfolio/deskfolio/internal/ports/mocks"
)

func expectNothingSaved(store *portsmocks.MockSnapshotStore, keys ...string) {
	for _, key := range keys {
		store.EXPECT().Load(mock.Anything, key, mock.Anything).Return(domain.ErrSnapshotNotFound)
	}
}

func TestNewPreferencesService_Defaults(t *testing.T) {
	store := portsmocks.NewMockSnapshotStore(t)
	expectNothingSaved(store, KeyDock, KeyTheme, KeyNotes, KeyGuessStats, KeySnakeStats)

	prefs := NewPreferencesService(context.Background(), store, domain.ThemeLight)

	assert.Equal(t, domain.DefaultDock, prefs.Dock())
	assert.Equal(t, domain.ThemeLight, prefs.Theme())
	assert.Empty(t, prefs.Notes())
	assert.Equal(t, domain.GuessStats{}, prefs.GuessStats())
}

func TestNewPreferencesService_LoadsSnapshots(t *testing.T) {
	store := portsmocks.NewMockSnapshotStore(t)
	store.EXPECT().Load(mock.Anything, KeyDock, mock.Anything).
		Run(func(ctx context.Context, key string, v interface{}) {
			*(v.(*[]domain.AppID)) = []domain.AppID{domain.AppTerminal, "bogus", domain.AppTerminal, domain.AppNotes}
		}).Return(nil)
	store.EXPECT().Load(mock.Anything, KeyTheme, mock.Anything).
		Run(func(ctx context.Context, key string, v interface{}) {
			*(v.(*domain.ThemeName)) = domain.ThemeDark
		}).Return(nil)
	store.EXPECT().Load(mock.Anything, KeyNotes, mock.Anything).Return(errors.New("database is locked"))
	store.EXPECT().Load(mock.Anything, KeyGuessStats, mock.Anything).
		Run(func(ctx context.Context, key string, v interface{}) {
			*(v.(*domain.GuessStats)) = domain.GuessStats{Wins: 2}
		}).Return(nil)
	expectNothingSaved(store, KeySnakeStats)

	prefs := NewPreferencesService(context.Background(), store, domain.ThemeLight)

	assert.Equal(t, []domain.AppID{domain.AppTerminal, domain.AppNotes}, prefs.Dock())
	assert.Equal(t, domain.ThemeDark, prefs.Theme())
	assert.Empty(t, prefs.Notes())
	assert.Equal(t, domain.GuessStats{Wins: 2}, prefs.GuessStats())
}

func TestPreferences_PinAndUnpin(t *testing.T) {
	store := portsmocks.NewMockSnapshotStore(t)
	expectNothingSaved(store, KeyDock, KeyTheme, KeyNotes, KeyGuessStats, KeySnakeStats)
	store.EXPECT().Save(mock.Anything, KeyDock,
		[]domain.AppID{domain.AppFinder, domain.AppNotes, domain.AppTerminal, domain.AppProjects, domain.AppSettings, domain.AppAbout}).
		Return(nil).Once()
	store.EXPECT().Save(mock.Anything, KeyDock,
		[]domain.AppID{domain.AppFinder, domain.AppTerminal, domain.AppProjects, domain.AppSettings, domain.AppAbout}).
		Return(nil).Once()

	prefs := NewPreferencesService(context.Background(), store, domain.ThemeLight)

	assert.True(t, prefs.Pin(domain.AppAbout))
	assert.False(t, prefs.Pin(domain.AppAbout), "duplicate pin")
	assert.False(t, prefs.Pin("calculator"), "unknown app")
	assert.True(t, prefs.Unpin(domain.AppNotes))
	assert.False(t, prefs.Unpin(domain.AppNotes))
}

func TestPreferences_StoreFailuresAreSwallowed(t *testing.T) {
	store := portsmocks.NewMockSnapshotStore(t)
	expectNothingSaved(store, KeyDock, KeyTheme, KeyNotes, KeyGuessStats, KeySnakeStats)
	store.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	prefs := NewPreferencesService(context.Background(), store, domain.ThemeLight)
	prefs.SetTheme(domain.ThemeDark)
	prefs.SetNotes("buy milk")
	prefs.SaveSnakeStats(domain.SnakeStats{Best: 3})

	assert.Equal(t, domain.ThemeDark, prefs.Theme())
	assert.Equal(t, "buy milk", prefs.Notes())
	assert.Equal(t, 3, prefs.SnakeStats().Best)
}

func TestPreferences_NilStoreKeepsStateInMemory(t *testing.T) {
	prefs := NewPreferencesService(context.Background(), nil, "neon")

	prefs.SaveGuessStats(domain.GuessStats{Losses: 1})

	assert.Equal(t, domain.ThemeLight, prefs.Theme())
	assert.Equal(t, 1, prefs.GuessStats().Losses)
}
