package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/threatwatch/threatwatch/pkg/domain"
)

// ListKeywordRules retrieves the classifier taxonomy
func (db *DB) ListKeywordRules(ctx context.Context) ([]domain.KeywordRule, error) {
	var rows []KeywordRule
	query := `SELECT * FROM keyword_rules ORDER BY category, keyword`
	if err := db.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list keyword rules: %w", err)
	}

	rules := make([]domain.KeywordRule, len(rows))
	for i, r := range rows {
		rules[i] = domain.KeywordRule{Keyword: r.Keyword, Category: r.Category, Weight: r.Weight}
	}
	return rules, nil
}

// SeedKeywordRules loads the given rules if the table is empty. Used on
// startup to install the default taxonomy without clobbering operator edits.
func (db *DB) SeedKeywordRules(ctx context.Context, rules []domain.KeywordRule) error {
	var count int64
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM keyword_rules`); err != nil {
		return fmt.Errorf("count keyword rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO keyword_rules (keyword, category, weight)
			VALUES (?, ?, ?)
			ON CONFLICT DO NOTHING
		`
		for _, r := range rules {
			if _, err := tx.ExecContext(ctx, query, r.Keyword, r.Category, r.Weight); err != nil {
				return fmt.Errorf("insert keyword rule %q: %w", r.Keyword, err)
			}
		}
		return nil
	})
}
