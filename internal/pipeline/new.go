package pipeline

import (
	"github.com/nguyentantai21042004/product-narrator/internal/extractor"
	"github.com/nguyentantai21042004/product-narrator/internal/logger"
	"github.com/nguyentantai21042004/product-narrator/internal/models"
	"github.com/nguyentantai21042004/product-narrator/internal/narrator"
	"github.com/nguyentantai21042004/product-narrator/internal/publisher"
	"github.com/nguyentantai21042004/product-narrator/internal/store"
	"github.com/nguyentantai21042004/product-narrator/internal/summarizer"
)

// ReportWriter renders the summaries digest
type ReportWriter func(title string, summaries []models.Summary, path string) error

// Deps are the stages a pipeline is built from. Report and Publisher are optional.
type Deps struct {
	Extractor  extractor.Extractor
	Store      store.Store
	Summarizer summarizer.Summarizer
	Narrator   narrator.Narrator
	Publisher  publisher.Publisher
	Report     ReportWriter
	ReportPath string
}

type implPipeline struct {
	deps   Deps
	logger logger.Logger
}

// New creates a Pipeline over the given stages
func New(deps Deps, log logger.Logger) Pipeline {
	return &implPipeline{
		deps:   deps,
		logger: log,
	}
}
