package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/keyboardkit/keyboardkit/internal/database"
)

// UsageEvent is one recorded emoji insertion.
type UsageEvent struct {
	ID         string
	Glyph      string
	Category   string
	InsertedAt time.Time
}

// UsageRepo records emoji insertions and answers frequency and
// recency queries. It implements emoji.FrequentProvider.
type UsageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) *UsageRepo { return &UsageRepo{db: db} }

// Record stores one insertion of glyph from category.
func (r *UsageRepo) Record(ctx context.Context, glyph, category string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO emoji_usage(id, glyph, category, inserted_at) VALUES (?, ?, ?, ?)
	`, uuid.NewString(), glyph, category, at.UTC())
	return err
}

// MostFrequent returns up to limit glyphs ordered by insertion count,
// most recent use breaking ties.
func (r *UsageRepo) MostFrequent(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT glyph FROM emoji_usage
	GROUP BY glyph
	ORDER BY COUNT(*) DESC, MAX(inserted_at) DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGlyphs(rows)
}

// MostRecent returns up to limit distinct glyphs ordered by last use.
func (r *UsageRepo) MostRecent(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT glyph FROM emoji_usage
	GROUP BY glyph
	ORDER BY MAX(inserted_at) DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGlyphs(rows)
}

// Events lists raw usage events, newest first.
func (r *UsageRepo) Events(ctx context.Context, limit int) ([]UsageEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, glyph, category, inserted_at FROM emoji_usage
	ORDER BY inserted_at DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UsageEvent
	for rows.Next() {
		var e UsageEvent
		if err := rows.Scan(&e.ID, &e.Glyph, &e.Category, &e.InsertedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune caps the history at max events, deleting oldest first. The
// count and the delete run in one transaction so a concurrent Record
// cannot land between them.
func (r *UsageRepo) Prune(ctx context.Context, max int) error {
	if max < 0 {
		max = 0
	}
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM emoji_usage`).Scan(&n); err != nil {
			return err
		}
		if n <= max {
			return nil
		}
		_, err := tx.ExecContext(ctx, `
		DELETE FROM emoji_usage WHERE id IN (
			SELECT id FROM emoji_usage ORDER BY inserted_at ASC LIMIT ?
		)
		`, n-max)
		return err
	})
}

// Clear deletes all usage history.
func (r *UsageRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM emoji_usage`)
	return err
}

func scanGlyphs(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
