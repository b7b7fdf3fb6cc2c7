package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// CreateFeedSource registers a source, a no-op if the name is taken
func (db *DB) CreateFeedSource(ctx context.Context, src *domain.FeedSource) error {
	query := `
		INSERT INTO feed_sources (name, url, kind, category_hint, enabled)
		VALUES (:name, :url, :kind, :category_hint, :enabled)
		ON CONFLICT(name) DO NOTHING
	`
	row := &FeedSource{
		Name:         src.Name,
		URL:          src.URL,
		Kind:         string(src.Kind),
		CategoryHint: src.CategoryHint,
		Enabled:      src.Enabled,
	}
	result, err := db.conn.NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("create feed source: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected > 0 {
		if id, err := result.LastInsertId(); err == nil {
			src.ID = id
		}
	}
	return nil
}

// GetEnabledSources retrieves all sources subject to ingestion
func (db *DB) GetEnabledSources(ctx context.Context) ([]*domain.FeedSource, error) {
	var rows []FeedSource
	query := `SELECT * FROM feed_sources WHERE enabled = 1 ORDER BY name`
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get enabled sources: %w", err)
	}

	sources := make([]*domain.FeedSource, len(rows))
	for i, r := range rows {
		sources[i] = sourceToDomain(&r)
	}
	return sources, nil
}

// GetFeedSource retrieves a source by name
func (db *DB) GetFeedSource(ctx context.Context, name string) (*domain.FeedSource, error) {
	var row FeedSource
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM feed_sources WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feed source %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("get feed source: %w", err)
	}
	return sourceToDomain(&row), nil
}

// UpdateSourceFetched records a successful fetch and clears the error state
func (db *DB) UpdateSourceFetched(ctx context.Context, id int64, ts time.Time) error {
	query := `
		UPDATE feed_sources
		SET last_fetched = ?, last_error = '', error_count = 0
		WHERE id = ?
	`
	if _, err := db.conn.ExecContext(ctx, query, ts, id); err != nil {
		return fmt.Errorf("update source fetched: %w", err)
	}
	return nil
}

// UpdateSourceError records a failed fetch
func (db *DB) UpdateSourceError(ctx context.Context, id int64, errMsg string) error {
	query := `
		UPDATE feed_sources
		SET last_error = ?, error_count = error_count + 1
		WHERE id = ?
	`
	if _, err := db.conn.ExecContext(ctx, query, errMsg, id); err != nil {
		return fmt.Errorf("update source error: %w", err)
	}
	return nil
}

func sourceToDomain(r *FeedSource) *domain.FeedSource {
	src := &domain.FeedSource{
		ID:           r.ID,
		Name:         r.Name,
		URL:          r.URL,
		Kind:         domain.SourceKind(r.Kind),
		CategoryHint: r.CategoryHint,
		Enabled:      r.Enabled,
		LastError:    r.LastError,
		ErrorCount:   r.ErrorCount,
		CreatedAt:    r.CreatedAt,
	}
	if r.LastFetched.Valid {
		t := r.LastFetched.Time
		src.LastFetched = &t
	}
	return src
}
