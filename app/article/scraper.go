// Package article retrieves full article pages and extracts their body text
// and lead image.
package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const fetchTimeout = 20 * time.Second

// maxStoredChars caps extracted text before it is handed to storage.
// Scraped pages are untrusted input and can be arbitrarily large.
const maxStoredChars = 20000

var whitespaceRun = regexp.MustCompile(`\s+`)

// Scraper fetches article pages over HTTP and extracts paragraph text plus
// the og:image lead image.
type Scraper struct {
	client    *http.Client
	userAgent string
}

func NewScraper(userAgent string) *Scraper {
	return &Scraper{
		client:    &http.Client{Timeout: fetchTimeout},
		userAgent: userAgent,
	}
}

// Fetch returns the extracted body text and lead image URL for the page at
// url. Any network, status, or parse failure yields empty strings; the
// failure is logged, never returned.
func (s *Scraper) Fetch(ctx context.Context, url string) (string, string) {
	doc, err := s.fetchDocument(ctx, url)
	if err != nil {
		slog.Warn("Article fetch failed", "url", url, "error", err)
		return "", ""
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, p.Text())
	})

	content := NormalizeWhitespace(strings.Join(paragraphs, " "))
	if runes := []rune(content); len(runes) > maxStoredChars {
		content = string(runes[:maxStoredChars])
	}

	imageURL, _ := doc.Find(`meta[property="og:image"]`).Attr("content")

	return content, imageURL
}

func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims both ends.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
