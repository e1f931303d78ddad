package extractor

import (
	"context"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Extractor fetches the listing page and parses a fixed number of products from it.
type Extractor interface {
	Extract(ctx context.Context) ([]models.Product, error)
}
