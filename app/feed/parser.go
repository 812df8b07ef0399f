// Package feed fetches RSS/Atom documents and turns them into candidate
// entries for the ingestion pipeline.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const fetchTimeout = 30 * time.Second

// Entry is one candidate item delivered by a feed, in feed order.
type Entry struct {
	Title string
	Link  string
}

// Parser fetches a feed URL and parses it into entries.
type Parser struct {
	client       *http.Client
	gofeedParser *gofeed.Parser
	userAgent    string
}

func NewParser(userAgent string) *Parser {
	return &Parser{
		client:       &http.Client{Timeout: fetchTimeout},
		gofeedParser: gofeed.NewParser(),
		userAgent:    userAgent,
	}
}

// Fetch retrieves and parses the feed at url. Entries keep the order
// delivered by the source; titles and links are passed through untouched.
func (p *Parser) Fetch(ctx context.Context, url string) ([]Entry, error) {
	data, err := p.fetchFeed(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, Entry{
			Title: item.Title,
			Link:  item.Link,
		})
	}

	return entries, nil
}

func (p *Parser) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
