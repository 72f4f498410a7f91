package ports

import "time"

// Task is a handle to a recurring scheduled callback
type Task interface {
	// Cancel stops the task; the callback never runs again after Cancel returns
	Cancel()
	// Active reports whether the task is still scheduled
	Active() bool
}

// Scheduler runs callbacks on the owner's event loop at a fixed period
type Scheduler interface {
	// Every schedules fn to run every interval until the returned task is cancelled
	Every(interval time.Duration, fn func()) Task
}
