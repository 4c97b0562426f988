package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mealworks/recipe-harvester/models"
)

// IngestResult reports the outcome of one ingestion attempt. A duplicate
// is a normal idempotency outcome, not a fault.
type IngestResult struct {
	Accepted  bool   `json:"accepted"`
	CatalogID int64  `json:"catalog_id,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// Record bundles an extracted recipe with its derived metadata for
// ingestion.
type Record struct {
	Recipe      *models.Recipe
	Ingredients []models.ParsedIngredient
	Cuisine     models.CuisineMatch
	Category    string
	Difficulty  string
}

// Ingest writes a recipe into the catalog unless its content hash is
// already present. The hash check and insert run inside one transaction
// so concurrent ingesters cannot race a duplicate in.
func (c *Catalog) Ingest(rec Record) (IngestResult, error) {
	return c.ingest(rec, false)
}

// IngestUpdate is the explicit overwrite variant: an existing entry with
// the same content hash is replaced instead of rejected.
func (c *Catalog) IngestUpdate(rec Record) (IngestResult, error) {
	return c.ingest(rec, true)
}

func (c *Catalog) ingest(rec Record, update bool) (IngestResult, error) {
	if !rec.Recipe.IsValid() {
		return IngestResult{Accepted: false, Reason: "invalid recipe"}, fmt.Errorf("refusing to ingest invalid recipe")
	}

	hash := ContentHash(rec.Recipe.SourceURL, rec.Recipe.Title)

	instructionsJSON, err := json.Marshal(rec.Recipe.Instructions)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to encode instructions: %w", err)
	}

	tx, err := c.Begin()
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow("SELECT recipe_id FROM recipes WHERE content_hash = ?", hash).Scan(&existingID)
	switch {
	case err == nil && !update:
		return IngestResult{Accepted: false, CatalogID: existingID, Reason: "duplicate"}, nil
	case err == nil && update:
		if _, err := tx.Exec("DELETE FROM recipes WHERE recipe_id = ?", existingID); err != nil {
			return IngestResult{}, fmt.Errorf("failed to replace existing recipe: %w", err)
		}
	case !errors.Is(err, sql.ErrNoRows):
		return IngestResult{}, fmt.Errorf("failed to check content hash: %w", err)
	}

	r := rec.Recipe
	result, err := tx.Exec(`
		INSERT INTO recipes (content_hash, title, description, source_url, cuisine, cuisine_confidence,
			category, difficulty, language, prep_time, cook_time, total_time, servings, image_url,
			extraction_method, instructions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, hash, r.Title, r.Description, r.SourceURL, rec.Cuisine.Label, rec.Cuisine.Confidence,
		rec.Category, rec.Difficulty, rec.Cuisine.Language, r.PrepTime, r.CookTime, r.TotalTime,
		r.Servings, r.ImageURL, r.ExtractionMethod, string(instructionsJSON))
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to insert recipe: %w", err)
	}

	recipeID, err := result.LastInsertId()
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to get recipe ID: %w", err)
	}

	for i, ing := range rec.Ingredients {
		var quantity interface{}
		if ing.Quantity != nil {
			quantity = *ing.Quantity
		}
		if _, err := tx.Exec(`
			INSERT INTO recipe_ingredients (recipe_id, position, original_text, name, quantity, unit, preparation)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, recipeID, i, ing.Original, ing.Name, quantity, ing.Unit, ing.Preparation); err != nil {
			return IngestResult{}, fmt.Errorf("failed to insert ingredient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestResult{}, fmt.Errorf("failed to commit ingestion: %w", err)
	}

	reason := "created"
	if update {
		reason = "updated"
	}
	return IngestResult{Accepted: true, CatalogID: recipeID, Reason: reason}, nil
}
