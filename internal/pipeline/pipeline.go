package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

const reportTitle = "Product summaries"

// Run orchestrates the whole pipeline. Each stage completes before the next begins.
func (p *implPipeline) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting product narration run")
	p.logger.Info(ctx, "========================================")

	// Step 1: Scrape products
	p.logger.Info(ctx, "Scraping products from website...")
	products, err := p.deps.Extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// Step 2: Persist
	p.logger.Info(ctx, "Saving products to %s", p.deps.Store.Path())
	if err := p.deps.Store.Save(products); err != nil {
		p.logger.Error(ctx, "Failed to save products: %v", err)
		return nil, fmt.Errorf("save: %w", err)
	}

	res, err := p.fromStore(ctx)
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(startTime)
	p.logCompletion(ctx, res)
	return res, nil
}

// Regenerate re-runs everything after extraction from the persisted product file
func (p *implPipeline) Regenerate(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Regenerating from %s", p.deps.Store.Path())

	res, err := p.fromStore(ctx)
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(startTime)
	p.logCompletion(ctx, res)
	return res, nil
}

// fromStore runs reload → summarize → report → narrate → publish
func (p *implPipeline) fromStore(ctx context.Context) (*Result, error) {
	res := &Result{}

	// Step 3: Reload stored products
	p.logger.Info(ctx, "Reading stored products...")
	products, err := p.deps.Store.Load()
	if err != nil {
		p.logger.Error(ctx, "Failed to load products: %v", err)
		return nil, fmt.Errorf("load: %w", err)
	}
	res.Products = products

	// Step 4: Summaries (never fails, items fall back individually)
	p.logger.Info(ctx, "Generating summaries for %d products...", len(products))
	res.Summaries = p.deps.Summarizer.Summarize(ctx, products)

	// Step 5: Optional docx report
	if p.deps.Report != nil && p.deps.ReportPath != "" {
		if err := p.deps.Report(reportTitle, res.Summaries, p.deps.ReportPath); err != nil {
			p.logger.Warn(ctx, "Failed to write report %s: %v", p.deps.ReportPath, err)
		} else {
			res.ReportPath = p.deps.ReportPath
			p.logger.Info(ctx, "Report written: %s", p.deps.ReportPath)
		}
	}

	// Step 6: Audio
	p.logger.Info(ctx, "Generating audio files...")
	files, err := p.deps.Narrator.Narrate(ctx, res.Summaries)
	if err != nil {
		return nil, fmt.Errorf("narrate: %w", err)
	}
	res.AudioFiles = files

	// Step 7: Optional upload
	if p.deps.Publisher != nil {
		uploads := append([]string{p.deps.Store.Path()}, files...)
		uris, err := p.deps.Publisher.Publish(ctx, uploads)
		if err != nil {
			return nil, fmt.Errorf("publish: %w", err)
		}
		res.Published = uris
	}

	return res, nil
}

func (p *implPipeline) logCompletion(ctx context.Context, res *Result) {
	fallbacks := 0
	for _, s := range res.Summaries {
		if s.Source == models.SourceFallback {
			fallbacks++
		}
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Done! %d audio files created", len(res.AudioFiles))
	p.logger.Info(ctx, "Products: %d (%d fallback summaries)", len(res.Products), fallbacks)
	if res.ReportPath != "" {
		p.logger.Info(ctx, "Report: %s", res.ReportPath)
	}
	if len(res.Published) > 0 {
		p.logger.Info(ctx, "Uploaded: %d objects", len(res.Published))
	}
	p.logger.Info(ctx, "Processing time: %s", res.Duration)
	p.logger.Info(ctx, "========================================")
}
