package help

const QuickstartYAML = `# recipe-harvester Quick Start

pipeline_stages:
  crawl: "Discover recipe pages from a seed URL (same-origin, robots-aware)"
  extract: "Pull structured recipe data (JSON-LD, microdata, HTML patterns)"
  classify: "Cuisine label + recipe-likelihood score per extracted page"
  ingest: "Deduplicated storage in the SQLite catalog"

commands:
  crawl_site: |
    recipe-harvester crawl --url "https://cooking.example.com"

  crawl_bounded: |
    recipe-harvester crawl --url "https://cooking.example.com" --max-pages 50 --delay 2s

  crawl_with_export: |
    recipe-harvester crawl --url "https://cooking.example.com" --out recipes.json
    recipe-harvester crawl --url "https://cooking.example.com" --out recipes.yaml --format yaml
    recipe-harvester crawl --url "https://cooking.example.com" --out recipes.txt --format text

  extract_single_page: |
    recipe-harvester extract --url "https://cooking.example.com/recipes/carbonara"

  extract_and_save: |
    recipe-harvester extract --url "https://cooking.example.com/recipes/carbonara" --save

  parse_ingredient_line: |
    recipe-harvester parse "2 1/2 cups all-purpose flour, sifted"

  list_catalog: |
    recipe-harvester library list
    recipe-harvester library list --cuisine italian --category dessert

  lookup_duplicate: |
    recipe-harvester library lookup --source "https://cooking.example.com/recipes/carbonara" --title "Spaghetti Carbonara"

  crawl_history: |
    recipe-harvester library runs

key_files:
  - "recipe-harvester.db (SQLite catalog, created on first ingest)"
  - "cuisines.yaml (optional keyword vocabulary override, see --vocab)"

dedup_invariants:
  - "Content hash = SHA-256 of lowercased source|title"
  - "Re-crawling the same site never creates duplicate rows"
  - "Use --update to overwrite an existing entry instead of skipping it"

crawl_behavior:
  - "Only same-origin links are followed"
  - "Recipe pages are leaves: their outbound links are not expanded"
  - "robots.txt disallow rules are honored (disable with --no-robots)"
  - "Per-page fetch failures are recorded in the report, never fatal"

error_behavior:
  - "Invalid seed URL: fail fast before crawling"
  - "Malformed structured data: falls through to the next strategy"
  - "Exit codes: 0=success, 1=error"
`
