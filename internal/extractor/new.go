package extractor

import (
	"net/http"

	"github.com/nguyentantai21042004/product-narrator/internal/config"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

type implExtractor struct {
	cfg    config.SourceConfig
	client *http.Client
	logger logger.Logger
}

// New creates an Extractor for the configured source page
func New(cfg *config.Config, log logger.Logger) Extractor {
	return &implExtractor{
		cfg:    cfg.Source,
		client: &http.Client{Timeout: cfg.SourceTimeout()},
		logger: log,
	}
}
