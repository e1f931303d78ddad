// Package models holds the records exchanged between pipeline stages.
package models

// Product is one scraped listing. Both fields are non-empty once accepted.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Source tells where a summary's text came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Summary is the short text narrated for one Product.
type Summary struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Source  Source `json:"source"`
}
