package domain

import "errors"

var (
	ErrFetchFailed      = errors.New("repository fetch failed")
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrUnknownApp       = errors.New("unknown app")
)
