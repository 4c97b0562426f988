package library

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mealworks/recipe-harvester/pkg/catalog"
)

// ListAction prints catalog entries matching the filter flags.
func ListAction(c *cli.Context) error {
	cat, err := catalog.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	entries, err := cat.List(catalog.ListFilter{
		Cuisine:    c.String("cuisine"),
		Category:   c.String("category"),
		Difficulty: c.String("difficulty"),
		Limit:      c.Int("limit"),
	})
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No recipes found")
		return nil
	}

	fmt.Printf("%-6s %-40s %-12s %-12s %-8s %-20s\n",
		"ID", "Title", "Cuisine", "Category", "Level", "Added")
	fmt.Println(strings.Repeat("-", 102))

	for _, e := range entries {
		fmt.Printf("%-6d %-40s %-12s %-12s %-8s %-20s\n",
			e.RecipeID,
			truncate(e.Title, 40),
			e.Cuisine,
			e.Category,
			e.Difficulty,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Printf("\nTotal: %d recipes\n", len(entries))
	return nil
}

// LookupAction checks whether a source/title pair is already cataloged.
func LookupAction(c *cli.Context) error {
	source := c.String("source")
	title := c.String("title")
	if source == "" || title == "" {
		return fmt.Errorf("both --source and --title are required")
	}

	cat, err := catalog.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	hash := catalog.ContentHash(source, title)
	id, found, err := cat.LookupByHash(hash)
	if err != nil {
		return err
	}

	if !found {
		fmt.Printf("Not in catalog (hash %s)\n", hash)
		return nil
	}
	fmt.Printf("Found recipe %d (hash %s)\n", id, hash)
	return nil
}

// RunsAction prints recent crawl run bookkeeping rows.
func RunsAction(c *cli.Context) error {
	cat, err := catalog.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer cat.Close()

	runs, err := cat.ListRuns(c.Int("limit"))
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No crawl runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-35s %-8s %-10s %-9s %-6s %-8s\n",
		"ID", "Started", "Base URL", "Pages", "Candidates", "Ingested", "Dups", "Failures")
	fmt.Println(strings.Repeat("-", 110))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-35s %-8d %-10d %-9d %-6d %-8d\n",
			r.RunID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			truncate(r.BaseURL, 35),
			r.PagesVisited,
			r.CandidatesFound,
			r.RecipesIngested,
			r.Duplicates,
			r.Failures,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
