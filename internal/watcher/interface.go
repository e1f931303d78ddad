package watcher

import "context"

// Watcher reports edits to a single file
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per burst of changes to the watched file
type EventHandler func(ctx context.Context, filePath string) error
