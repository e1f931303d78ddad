package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Save overwrites the file with the products as a 2-space indented JSON array
func (s *implStore) Save(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".products-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// Load reads the products back; a missing file matches models.ErrNotFound and
// malformed content, a non-array or a record with a blank field matches models.ErrParse
func (s *implStore) Load() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", models.ErrParse, s.path, err)
	}
	if products == nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON array", models.ErrParse, s.path)
	}
	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Description) == "" {
			return nil, fmt.Errorf("%w: %s: record %d has an empty name or description", models.ErrParse, s.path, i+1)
		}
	}
	return products, nil
}
