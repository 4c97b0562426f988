// Package catalog is the content-addressed recipe store. It owns the
// hash index: the crawler, extractor and parser are stateless with
// respect to it, and duplicate detection happens only here.
package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "recipe-harvester.db"

type Catalog struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the catalog database at path, initializing the
// schema on first use.
func Open(path string) (*Catalog, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	c := &Catalog{DB: sqlDB, path: path}
	if err := c.ensureSchemaExists(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return c, nil
}

func (c *Catalog) ensureSchemaExists() error {
	var tableName string
	err := c.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='recipes'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return c.InitSchema()
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}

// InitSchema initializes the database schema.
func (c *Catalog) InitSchema() error {
	_, err := c.Exec(schema)
	return err
}
