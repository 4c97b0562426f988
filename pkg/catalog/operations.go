package catalog

import (
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ContentHash computes the deterministic fingerprint used for
// deduplication: SHA-256 over the lowercased source identifier and title.
func ContentHash(source, title string) string {
	key := strings.ToLower(strings.TrimSpace(source)) + "|" + strings.ToLower(strings.TrimSpace(title))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// Entry is a catalog row as seen by callers.
type Entry struct {
	RecipeID    int64
	ContentHash string
	Title       string
	Cuisine     string
	Category    string
	Difficulty  string
	SourceURL   string
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// LookupByHash returns the recipe_id for a content hash, or found=false.
func (c *Catalog) LookupByHash(hash string) (int64, bool, error) {
	var id int64
	err := c.QueryRow("SELECT recipe_id FROM recipes WHERE content_hash = ?", hash).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up hash: %w", err)
	}
	return id, true, nil
}

// ListFilter narrows List results; zero values match everything.
type ListFilter struct {
	Cuisine    string
	Category   string
	Difficulty string
	Limit      int
}

// List returns catalog entries matching the filter, newest first.
func (c *Catalog) List(filter ListFilter) ([]Entry, error) {
	query := `SELECT recipe_id, content_hash, title, COALESCE(cuisine, ''), COALESCE(category, ''),
		COALESCE(difficulty, ''), source_url, created_at, modified_at FROM recipes WHERE 1=1`
	args := []interface{}{}

	if filter.Cuisine != "" {
		query += " AND cuisine = ?"
		args = append(args, filter.Cuisine)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if filter.Difficulty != "" {
		query += " AND difficulty = ?"
		args = append(args, filter.Difficulty)
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := c.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RecipeID, &e.ContentHash, &e.Title, &e.Cuisine, &e.Category,
			&e.Difficulty, &e.SourceURL, &e.CreatedAt, &e.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// RunStats summarizes one pipeline invocation.
type RunStats struct {
	RunID           int64
	BaseURL         string
	StartedAt       time.Time
	PagesVisited    int
	CandidatesFound int
	RecipesIngested int
	Duplicates      int
	Failures        int
}

// RecordRun inserts a crawl_runs bookkeeping row and returns its id.
func (c *Catalog) RecordRun(stats RunStats) (int64, error) {
	result, err := c.Exec(`
		INSERT INTO crawl_runs (base_url, pages_visited, candidates_found, recipes_ingested, duplicates, failures)
		VALUES (?, ?, ?, ?, ?, ?)
	`, stats.BaseURL, stats.PagesVisited, stats.CandidatesFound, stats.RecipesIngested, stats.Duplicates, stats.Failures)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return result.LastInsertId()
}

// ListRuns returns the most recent crawl runs.
func (c *Catalog) ListRuns(limit int) ([]RunStats, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.Query(`
		SELECT run_id, base_url, started_at, pages_visited, candidates_found, recipes_ingested, duplicates, failures
		FROM crawl_runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunStats
	for rows.Next() {
		var r RunStats
		if err := rows.Scan(&r.RunID, &r.BaseURL, &r.StartedAt, &r.PagesVisited, &r.CandidatesFound,
			&r.RecipesIngested, &r.Duplicates, &r.Failures); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
