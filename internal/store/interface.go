package store

import "github.com/nguyentantai21042004/product-narrator/internal/models"

// Store persists the product collection at a well-known path
type Store interface {
	Save(products []models.Product) error
	Load() ([]models.Product, error)
	Path() string
}
