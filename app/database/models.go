package database

import (
	"time"
)

// Article statuses. An article is published exactly when it carries a
// category id; everything else waits in the pending review queue.
const (
	StatusPublished = "published"
	StatusPending   = "pending"
)

// defaultSourceTypeID marks sources created by the RSS ingestion pipeline.
const defaultSourceTypeID = 1

// Source represents a feed source record in the database.
type Source struct {
	ID           int64
	Name         string
	SourceTypeID int
	CreatedAt    time.Time
}

// News represents one ingested article. Articles are insert-only; they are
// never updated or deleted by the pipeline.
type News struct {
	ID           int64
	Title        string
	Content      string
	PrimaryImage *string // nil when the page exposed no og:image
	CategoryID   *int64  // nil when classification was inconclusive
	SourceID     int64
	Status       string
	IsExternal   bool
	PublishedAt  time.Time // insertion time, not the article's own pub date
}
