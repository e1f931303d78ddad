package narrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Narrate synthesizes each summary in order and writes the bytes verbatim to
// product<i>.<ext>, i starting at 1. Files written before a failure are kept.
func (n *implNarrator) Narrate(ctx context.Context, summaries []models.Summary) ([]string, error) {
	if err := os.MkdirAll(n.dir, 0755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}

	paths := make([]string, 0, len(summaries))
	for i, s := range summaries {
		n.logger.Info(ctx, "[%d/%d] Synthesizing audio: %s", i+1, len(summaries), s.Name)

		audio, err := n.synth.Synthesize(ctx, s.Summary)
		if err != nil {
			n.logger.Error(ctx, "Audio generation failed for %s: %v", s.Name, err)
			return paths, fmt.Errorf("synthesize item %d (%s): %w", i+1, s.Name, err)
		}

		path := n.FilePath(i + 1)
		if err := os.WriteFile(path, audio, 0644); err != nil {
			n.logger.Error(ctx, "Failed to write %s: %v", path, err)
			return paths, fmt.Errorf("write %s: %w", path, err)
		}

		n.logger.Info(ctx, "[DONE] %s -> %s (%d bytes)", s.Name, path, len(audio))
		paths = append(paths, path)
	}

	return paths, nil
}

// FilePath is the audio file for the 1-based position
func (n *implNarrator) FilePath(position int) string {
	return filepath.Join(n.dir, fmt.Sprintf("product%d.%s", position, n.extension))
}
