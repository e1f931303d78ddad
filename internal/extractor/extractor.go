package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nguyentantai21042004/product-narrator/internal/models"
)

// Extract downloads the page and returns exactly cfg.ExpectedCount products, or an error
func (e *implExtractor) Extract(ctx context.Context) ([]models.Product, error) {
	e.logger.Info(ctx, "Fetching product page: %s", e.cfg.URL)

	root, err := e.fetch(ctx)
	if err != nil {
		e.logger.Error(ctx, "Scraping failed: %v", err)
		return nil, err
	}

	products := e.parse(ctx, goquery.NewDocumentFromNode(root))

	if len(products) != e.cfg.ExpectedCount {
		err := &models.CountError{Found: len(products), Expected: e.cfg.ExpectedCount}
		e.logger.Error(ctx, "Scraping failed: %v", err)
		return nil, err
	}

	e.logger.Info(ctx, "Scraped %d products", len(products))
	return products, nil
}

// fetch performs the single GET and parses the body into an HTML tree
func (e *implExtractor) fetch(ctx context.Context) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.cfg.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)
	req.Header.Set("Accept-Language", e.cfg.AcceptLanguage)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, models.NetworkError("fetch page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &models.APIError{Service: "source", StatusCode: resp.StatusCode, Body: string(body)}
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, models.NetworkError("read page", err)
	}
	return root, nil
}

// parse looks at the first ExpectedCount product elements and keeps the usable ones
func (e *implExtractor) parse(ctx context.Context, doc *goquery.Document) []models.Product {
	matches := doc.Find(e.cfg.ProductSelector)
	e.logger.Debug(ctx, "Selector %q matched %d elements", e.cfg.ProductSelector, matches.Length())

	products := make([]models.Product, 0, e.cfg.ExpectedCount)
	matches.EachWithBreak(func(i int, el *goquery.Selection) bool {
		if i >= e.cfg.ExpectedCount {
			return false
		}

		name := CleanName(el.Find(e.cfg.TitleSelector).Text())

		var description string
		if desc := el.Find(e.cfg.DescriptionSelector); desc.Length() > 0 {
			description = CleanText(desc.Text())
		} else {
			description = CleanText(e.cfg.DefaultDescription)
		}

		if name == "" || description == "" {
			e.logger.Warn(ctx, "Skipping element %d: empty name or description after cleaning", i+1)
			return true
		}

		products = append(products, models.Product{Name: name, Description: description})
		return true
	})

	return products
}
