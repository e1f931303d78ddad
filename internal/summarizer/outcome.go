package summarizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

const summaryPrompt = "Summarize this product in 1-2 sentences:\n%s - %s"

var errEmptyReply = errors.New("empty reply")

// Outcome is the result of one generation attempt: Text on success, Err on failure.
type Outcome struct {
	Text string
	Err  error
}

// Prompt builds the generation prompt for one product
func Prompt(p models.Product) string {
	return fmt.Sprintf(summaryPrompt, p.Name, p.Description)
}

// Fallback is the deterministic local summary: the name, then the first
// `words` words of the description, then "...".
func Fallback(p models.Product, words int) string {
	fields := strings.Fields(p.Description)
	if len(fields) > words {
		fields = fields[:words]
	}
	return fmt.Sprintf("%s - %s...", p.Name, strings.Join(fields, " "))
}

// resolve turns an Outcome into a Summary. Errors and blank replies yield the fallback.
func resolve(p models.Product, o Outcome, words int) models.Summary {
	text := strings.TrimSpace(o.Text)
	if o.Err == nil && text != "" {
		return models.Summary{Name: p.Name, Summary: text, Source: models.SourceModel}
	}
	return models.Summary{Name: p.Name, Summary: Fallback(p, words), Source: models.SourceFallback}
}

// reason is the log text for an Outcome that fell back
func (o Outcome) reason() error {
	if o.Err != nil {
		return o.Err
	}
	return errEmptyReply
}
