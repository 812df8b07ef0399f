package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SourceRepository handles database operations for feed sources.
type SourceRepository struct {
	db *DB
}

func NewSourceRepository(db *DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// GetOrCreate returns the id of the source with the given name, inserting a
// new row with the default source type on first sight. Correctness relies on
// sequential, single-process access; the UNIQUE constraint on name backstops
// accidental duplicates.
func (r *SourceRepository) GetOrCreate(ctx context.Context, name string) (int64, error) {
	query, args, err := psql.
		Select("id").
		From("sources").
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build source query: %w", err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up source: %w", err)
	}

	query, args, err = psql.
		Insert("sources").
		Columns("name", "source_type_id").
		Values(name, defaultSourceTypeID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build source insert: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert source: %w", err)
	}

	return id, nil
}
