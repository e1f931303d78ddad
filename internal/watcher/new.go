package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

const defaultDebounce = time.Second

// New watches filePath. The parent directory is watched so atomic replaces are seen.
func New(filePath string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &implWatcher{
		target:   filepath.Clean(filePath),
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		debounce: debounce,
	}, nil
}
