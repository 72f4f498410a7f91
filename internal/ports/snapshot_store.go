package ports

import "context"

// SnapshotReader reads key-value snapshots
type SnapshotReader interface {
	// Load decodes the snapshot stored under key into v.
	// Returns domain.ErrSnapshotNotFound when the key does not exist.
	Load(ctx context.Context, key string, v any) error
}

// SnapshotWriter stores key-value snapshots
type SnapshotWriter interface {
	Delete(ctx context.Context, key string) error
	Save(ctx context.Context, key string, v any) error
}

// SnapshotStore is the composite interface
type SnapshotStore interface {
	SnapshotReader
	SnapshotWriter
	Close() error
}
