package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// CreateArticle inserts a new article. Re-ingestion of the same
// fingerprint is a silent no-op handled by the unique constraint, not
// by a pre-check, so concurrent ingestion runs cannot race a duplicate
// in. The article's ID is set only when the row was actually inserted.
func (db *DB) CreateArticle(ctx context.Context, article *domain.Article) (inserted bool, err error) {
	row := articleFromDomain(article)
	if row.IngestedAt.IsZero() {
		row.IngestedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO articles (
			fingerprint, title, summary, body, link, source_links,
			category, severity, cve, tags, technologies, published, ingested_at, processed
		) VALUES (
			:fingerprint, :title, :summary, :body, :link, :source_links,
			:category, :severity, :cve, :tags, :technologies, :published, :ingested_at, :processed
		)
		ON CONFLICT(fingerprint) DO NOTHING
	`
	result, err := db.conn.NamedExecContext(ctx, query, row)
	if err != nil {
		return false, fmt.Errorf("insert article: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil // duplicate fingerprint, expected outcome
	}

	id, err := result.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("get last insert id: %w", err)
	}
	article.ID = id
	return true, nil
}

// GetArticle retrieves an article by ID
func (db *DB) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var row Article
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM articles WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return row.ToDomain(), nil
}

// GetArticleByFingerprint retrieves an article by its dedup key
func (db *DB) GetArticleByFingerprint(ctx context.Context, fingerprint string) (*domain.Article, error) {
	var row Article
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM articles WHERE fingerprint = ?`, fingerprint)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", fingerprint, ErrNotFound)
		}
		return nil, fmt.Errorf("get article by fingerprint: %w", err)
	}
	return row.ToDomain(), nil
}

// ArticleFilter restricts ListArticles results
type ArticleFilter struct {
	Category    string
	MaxSeverity domain.Severity // inclusive, by rank; empty means all
	Since       time.Time
	Until       time.Time
	Limit       int
}

// ListArticles retrieves articles matching the filter, newest first
func (db *DB) ListArticles(ctx context.Context, filter ArticleFilter) ([]*domain.Article, error) {
	builder := sq.Select("*").From("articles").OrderBy("published DESC")

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.MaxSeverity != "" {
		// the severity column stores names, translate the inclusive
		// rank threshold into the admitted set
		admitted := []string{}
		for _, s := range []domain.Severity{domain.SeverityCritical, domain.SeverityHigh,
			domain.SeverityMedium, domain.SeverityLow, domain.SeverityInfo} {
			if s.Rank() <= filter.MaxSeverity.Rank() {
				admitted = append(admitted, string(s))
			}
		}
		builder = builder.Where(sq.Eq{"severity": admitted})
	}
	if !filter.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"published": filter.Since})
	}
	if !filter.Until.IsZero() {
		builder = builder.Where(sq.LtOrEq{"published": filter.Until})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)) //nolint:gosec // limit is validated positive
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build articles query: %w", err)
	}

	var rows []Article
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].ToDomain()
	}
	return articles, nil
}

// GetArticlesNeedingBody retrieves articles without full body text, for
// the extraction worker
func (db *DB) GetArticlesNeedingBody(ctx context.Context, limit int) ([]*domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE body = '' AND link != '' AND processed = 0
		ORDER BY published DESC
		LIMIT ?
	`
	var rows []Article
	if err := db.conn.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get articles needing body: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].ToDomain()
	}
	return articles, nil
}

// UpdateArticleBody stores extracted full text for an article
func (db *DB) UpdateArticleBody(ctx context.Context, id int64, body string) error {
	if _, err := db.conn.ExecContext(ctx, `UPDATE articles SET body = ? WHERE id = ?`, body, id); err != nil {
		return fmt.Errorf("update article body: %w", err)
	}
	return nil
}

// GetUnprocessedArticles retrieves articles awaiting summary enrichment
func (db *DB) GetUnprocessedArticles(ctx context.Context, limit int) ([]*domain.Article, error) {
	query := `
		SELECT * FROM articles
		WHERE processed = 0 AND body != ''
		ORDER BY published DESC
		LIMIT ?
	`
	var rows []Article
	if err := db.conn.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("get unprocessed articles: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].ToDomain()
	}
	return articles, nil
}

// UpdateArticleSummary stores an enriched summary and marks the article processed
func (db *DB) UpdateArticleSummary(ctx context.Context, id int64, summary string) error {
	query := `UPDATE articles SET summary = ?, processed = 1 WHERE id = ?`
	if _, err := db.conn.ExecContext(ctx, query, summary, id); err != nil {
		return fmt.Errorf("update article summary: %w", err)
	}
	return nil
}

// CountArticles returns the total number of stored articles
func (db *DB) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}
