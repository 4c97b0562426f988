// Package export serializes a run's extracted recipes as a structured
// record collection (JSON or YAML) or renders them as a printable
// document.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mealworks/recipe-harvester/models"
)

// Build assembles the export envelope for a run.
func Build(baseURL string, recipes []models.Recipe) models.Export {
	return models.Export{
		BaseURL:      baseURL,
		ExportDate:   time.Now().Format("2006-01-02"),
		TotalRecipes: len(recipes),
		Recipes:      recipes,
	}
}

// WriteJSON persists the export as indented JSON.
func WriteJSON(path string, exp models.Export) error {
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// WriteYAML persists the export as YAML.
func WriteYAML(path string, exp models.Export) error {
	data, err := yaml.Marshal(exp)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
