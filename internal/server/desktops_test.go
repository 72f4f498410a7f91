package server

import (
	"testing"

	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
)

type countingDesktop struct {
	closed int
}

func (d *countingDesktop) Close() {
	d.closed++
}

type fakeContext struct {
	ssh.Context
	id string
}

func (c fakeContext) SessionID() string {
	return c.id
}

type fakeSession struct {
	ssh.Session
	ctx fakeContext
}

func (s fakeSession) Context() ssh.Context {
	return s.ctx
}

func TestDesktopRegistry_ReleaseClosesOnce(t *testing.T) {
	r := newDesktopRegistry()
	desktop := &countingDesktop{}
	r.track("a", desktop)

	r.release("a")
	r.release("a")
	r.release("unknown")

	assert.Equal(t, 1, desktop.closed)
	assert.Equal(t, 0, r.count())
}

func TestReleaseMiddleware_ClosesSessionDesktopThenCallsNext(t *testing.T) {
	r := newDesktopRegistry()
	mine := &countingDesktop{}
	other := &countingDesktop{}
	r.track("mine", mine)
	r.track("other", other)

	var nextCalled bool
	handler := r.releaseMiddleware()(func(ssh.Session) {
		nextCalled = true
		assert.Equal(t, 1, mine.closed)
	})
	handler(fakeSession{ctx: fakeContext{id: "mine"}})

	assert.True(t, nextCalled)
	assert.Equal(t, 1, mine.closed)
	assert.Equal(t, 0, other.closed)
	assert.Equal(t, 1, r.count())
}
