package server

import (
	"sync"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/deskfolio/deskfolio/internal/logging"
)

type closer interface {
	Close()
}

// desktopRegistry tracks the desktop of every live session until its program exits
type desktopRegistry struct {
	mu   sync.Mutex
	open map[string]closer
}

func newDesktopRegistry() *desktopRegistry {
	return &desktopRegistry{open: make(map[string]closer)}
}

func (r *desktopRegistry) track(sessionID string, desktop closer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[sessionID] = desktop
}

// release closes and forgets the session's desktop. Unknown ids are ignored.
func (r *desktopRegistry) release(sessionID string) {
	r.mu.Lock()
	desktop, ok := r.open[sessionID]
	delete(r.open, sessionID)
	r.mu.Unlock()

	if ok {
		desktop.Close()
		logging.Logger.Debug("Desktop released", "ssh_session", sessionID)
	}
}

func (r *desktopRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// releaseMiddleware runs after the bubbletea middleware, once the session's
// program has stopped, so no tick can reach a closed desktop.
func (r *desktopRegistry) releaseMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			r.release(sess.Context().SessionID())
			next(sess)
		}
	}
}
