package narrator

import (
	"context"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Narrator turns summaries into numbered audio files. The first failure aborts the run.
type Narrator interface {
	Narrate(ctx context.Context, summaries []models.Summary) ([]string, error)
}

// Synthesizer converts text to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
