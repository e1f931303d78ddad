package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Summarizer produces one Summary per Product, in input order. It never fails:
// an item whose generation fails gets a locally built fallback summary.
type Summarizer interface {
	Summarize(ctx context.Context, products []models.Product) []models.Summary
}

// Generator sends one prompt to a text-generation service and returns its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
