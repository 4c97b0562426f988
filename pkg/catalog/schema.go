package catalog

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Recipes: one row per unique content hash
CREATE TABLE IF NOT EXISTS recipes (
    recipe_id INTEGER PRIMARY KEY AUTOINCREMENT,
    content_hash TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    description TEXT,
    source_url TEXT NOT NULL,
    cuisine TEXT,
    cuisine_confidence REAL,
    category TEXT,
    difficulty TEXT,
    language TEXT,
    prep_time TEXT,
    cook_time TEXT,
    total_time TEXT,
    servings TEXT,
    image_url TEXT,
    extraction_method TEXT,
    instructions TEXT,            -- JSON array, source order preserved
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_recipes_hash ON recipes(content_hash);
CREATE INDEX IF NOT EXISTS idx_recipes_cuisine ON recipes(cuisine);
CREATE INDEX IF NOT EXISTS idx_recipes_category ON recipes(category);
CREATE INDEX IF NOT EXISTS idx_recipes_difficulty ON recipes(difficulty);

-- Ingredients: ordered structured lines per recipe
CREATE TABLE IF NOT EXISTS recipe_ingredients (
    ingredient_id INTEGER PRIMARY KEY AUTOINCREMENT,
    recipe_id INTEGER NOT NULL,
    position INTEGER NOT NULL,
    original_text TEXT NOT NULL,
    name TEXT NOT NULL,
    quantity REAL,
    unit TEXT,
    preparation TEXT,
    FOREIGN KEY (recipe_id) REFERENCES recipes(recipe_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_ingredients_recipe ON recipe_ingredients(recipe_id);
CREATE INDEX IF NOT EXISTS idx_ingredients_name ON recipe_ingredients(name);

-- Crawl runs: bookkeeping for each pipeline invocation
CREATE TABLE IF NOT EXISTS crawl_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    base_url TEXT NOT NULL,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    pages_visited INTEGER DEFAULT 0,
    candidates_found INTEGER DEFAULT 0,
    recipes_ingested INTEGER DEFAULT 0,
    duplicates INTEGER DEFAULT 0,
    failures INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON crawl_runs(started_at DESC);
`
