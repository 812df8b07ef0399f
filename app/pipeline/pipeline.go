// Package pipeline runs the ingestion workflow: per feed, per entry, apply
// dedupe, scrape, classify, category mapping, and persistence.
package pipeline

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/nabaai/news-ingest/app/categories"
	"github.com/nabaai/news-ingest/app/classifier"
	"github.com/nabaai/news-ingest/app/config"
	"github.com/nabaai/news-ingest/app/database"
	"github.com/nabaai/news-ingest/app/feed"
)

// maxEntriesPerFeed caps processing at each feed's most recent entries, in
// the order the source delivers them.
const maxEntriesPerFeed = 15

// minContentChars is the shortest extracted body accepted for persistence.
const minContentChars = 300

// EntrySource fetches a feed URL and returns its entries in feed order.
type EntrySource interface {
	Fetch(ctx context.Context, url string) ([]feed.Entry, error)
}

// ArticleScraper retrieves a page and extracts body text and lead image.
// Failures are contained inside the scraper and show up as empty strings.
type ArticleScraper interface {
	Fetch(ctx context.Context, url string) (content, imageURL string)
}

// SourceStore resolves or lazily creates source records by name.
type SourceStore interface {
	GetOrCreate(ctx context.Context, name string) (int64, error)
}

// NewsStore checks title existence and persists articles.
type NewsStore interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Insert(ctx context.Context, item database.News) (int64, error)
}

// Deps wires all collaborators into the pipeline.
type Deps struct {
	Sources    []config.Source
	Feeds      EntrySource
	Scraper    ArticleScraper
	Classifier classifier.Classifier
	SourceRepo SourceStore
	NewsRepo   NewsStore
}

// Stats accumulates counters over one run.
type Stats struct {
	Feeds            int
	FeedErrors       int
	Entries          int
	SkippedMissing   int
	SkippedDuplicate int
	SkippedThin      int
	StoreErrors      int
	Pending          int
	Published        int
	Added            int
}

// Pipeline orchestrates one ingestion run over the configured sources.
type Pipeline struct {
	sources    []config.Source
	feeds      EntrySource
	scraper    ArticleScraper
	classifier classifier.Classifier
	sourceRepo SourceStore
	newsRepo   NewsStore
	now        func() time.Time
}

func New(deps Deps) *Pipeline {
	return &Pipeline{
		sources:    deps.Sources,
		feeds:      deps.Feeds,
		scraper:    deps.Scraper,
		classifier: deps.Classifier,
		sourceRepo: deps.SourceRepo,
		newsRepo:   deps.NewsRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run processes every configured feed sequentially and returns the run
// counters. A failing feed or item never stops the run; only context
// cancellation does.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	for _, source := range p.sources {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		stats.Feeds++
		slog.Info("Fetching feed", "source", source.Name, "url", source.URL)

		sourceID, err := p.sourceRepo.GetOrCreate(ctx, source.Name)
		if err != nil {
			slog.Error("Failed to resolve source, skipping feed", "source", source.Name, "error", err)
			stats.FeedErrors++
			continue
		}

		entries, err := p.feeds.Fetch(ctx, source.URL)
		if err != nil {
			// A malformed or unreachable feed yields zero entries; the
			// remaining feeds still run.
			slog.Warn("Feed fetch failed", "source", source.Name, "error", err)
			stats.FeedErrors++
			continue
		}

		if len(entries) > maxEntriesPerFeed {
			entries = entries[:maxEntriesPerFeed]
		}

		for _, entry := range entries {
			p.processEntry(ctx, sourceID, source.Name, entry, &stats)
		}
	}

	return stats, nil
}

func (p *Pipeline) processEntry(ctx context.Context, sourceID int64, sourceName string, entry feed.Entry, stats *Stats) {
	stats.Entries++

	if entry.Title == "" || entry.Link == "" {
		stats.SkippedMissing++
		return
	}

	exists, err := p.newsRepo.ExistsByTitle(ctx, entry.Title)
	if err != nil {
		slog.Error("Duplicate check failed, skipping item", "title", entry.Title, "error", err)
		stats.StoreErrors++
		return
	}
	if exists {
		stats.SkippedDuplicate++
		return
	}

	content, imageURL := p.scraper.Fetch(ctx, entry.Link)
	if utf8.RuneCountInString(content) < minContentChars {
		stats.SkippedThin++
		return
	}

	label := p.classifier.Classify(ctx, content)

	status := database.StatusPending
	var categoryID *int64
	if id, ok := categories.Resolve(label); ok {
		cid := int64(id)
		categoryID = &cid
		status = database.StatusPublished
	}

	var primaryImage *string
	if imageURL != "" {
		primaryImage = &imageURL
	}

	item := database.News{
		Title:        entry.Title,
		Content:      content,
		PrimaryImage: primaryImage,
		CategoryID:   categoryID,
		SourceID:     sourceID,
		Status:       status,
		IsExternal:   true,
		PublishedAt:  p.now(),
	}

	if _, err := p.newsRepo.Insert(ctx, item); err != nil {
		slog.Error("Failed to store article, skipping item", "title", entry.Title, "error", err)
		stats.StoreErrors++
		return
	}

	stats.Added++
	if status == database.StatusPublished {
		stats.Published++
	} else {
		stats.Pending++
	}

	slog.Info("Added article", "status", status, "source", sourceName, "title", entry.Title)
}
