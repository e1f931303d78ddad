package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Summarize asks the generator for one summary per product. At most maxConcurrent
// requests are in flight; with the default of 1 they run strictly one after another.
func (s *implSummarizer) Summarize(ctx context.Context, products []models.Product) []models.Summary {
	summaries := make([]models.Summary, len(products))
	total := len(products)

	if s.maxConcurrent == 1 {
		for i, p := range products {
			summaries[i] = s.summarizeOne(ctx, i, total, p)
		}
		s.logCounts(ctx, summaries)
		return summaries
	}

	lim := newLimiter(s.maxConcurrent)
	for i, p := range products {
		err := lim.Go(ctx, func() {
			summaries[i] = s.summarizeOne(ctx, i, total, p)
		})
		if err != nil {
			summaries[i] = s.settle(ctx, i, total, p, Outcome{Err: err})
		}
	}
	lim.Wait()

	s.logCounts(ctx, summaries)
	return summaries
}

func (s *implSummarizer) summarizeOne(ctx context.Context, i, total int, p models.Product) models.Summary {
	s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, total, p.Name)

	text, err := s.generator.Generate(ctx, Prompt(p))
	return s.settle(ctx, i, total, p, Outcome{Text: text, Err: err})
}

func (s *implSummarizer) settle(ctx context.Context, i, total int, p models.Product, o Outcome) models.Summary {
	summary := resolve(p, o, s.fallbackWords)
	if summary.Source == models.SourceFallback {
		s.logger.Warn(ctx, "[FALLBACK] [%d/%d] %s: %v", i+1, total, p.Name, o.reason())
	} else {
		s.logger.Debug(ctx, "[%d/%d] %s: %s", i+1, total, p.Name, summary.Summary)
	}
	return summary
}

func (s *implSummarizer) logCounts(ctx context.Context, summaries []models.Summary) {
	fallbacks := 0
	for _, sum := range summaries {
		if sum.Source == models.SourceFallback {
			fallbacks++
		}
	}
	s.logger.Info(ctx, "Summary complete: %d from model, %d fallback", len(summaries)-fallbacks, fallbacks)
}
