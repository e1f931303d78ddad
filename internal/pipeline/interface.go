package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Pipeline runs the extract → persist → summarize → narrate sequence
type Pipeline interface {
	// Run performs a full pass starting from the web page.
	Run(ctx context.Context) (*Result, error)
	// Regenerate starts from the persisted product file, skipping extraction.
	Regenerate(ctx context.Context) (*Result, error)
}

// Result describes what one pass produced
type Result struct {
	Products   []models.Product
	Summaries  []models.Summary
	AudioFiles []string
	ReportPath string
	Published  []string
	Duration   time.Duration
}
