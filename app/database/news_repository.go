package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// NewsRepository handles database operations for ingested articles.
type NewsRepository struct {
	db *DB
}

func NewNewsRepository(db *DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// ExistsByTitle reports whether any article with exactly this title is
// already stored. The match is an exact string comparison; no case folding
// or whitespace normalization is applied.
func (r *NewsRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	query, args, err := psql.
		Select("id").
		From("news").
		Where(sq.Eq{"title": title}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build news query: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}

	return true, nil
}

// Insert stores a new article and returns its assigned id.
func (r *NewsRepository) Insert(ctx context.Context, item News) (int64, error) {
	query, args, err := psql.
		Insert("news").
		Columns("title", "content", "primary_image", "category_id",
			"source_id", "status", "is_external", "published_at").
		Values(item.Title, item.Content, item.PrimaryImage, item.CategoryID,
			item.SourceID, item.Status, item.IsExternal, item.PublishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build news insert: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert news: %w", err)
	}

	return id, nil
}
