package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS catalog_packages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		speed TEXT NOT NULL DEFAULT '',
		monthly_pence INTEGER NOT NULL DEFAULT 0,
		features TEXT NOT NULL DEFAULT '[]',
		technology TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		popular INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_packages_active ON catalog_packages(active, sort_order);`,
	`CREATE TABLE IF NOT EXISTS coverage_areas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		prefix TEXT NOT NULL,
		name TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 1,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_coverage_areas_prefix ON coverage_areas(prefix, active);`,
	`CREATE TABLE IF NOT EXISTS coverage_area_packages (
		area_id INTEGER NOT NULL REFERENCES coverage_areas(id) ON DELETE CASCADE,
		package_id INTEGER NOT NULL REFERENCES catalog_packages(id) ON DELETE CASCADE,
		PRIMARY KEY (area_id, package_id)
	);`,
}

// Migrate ensures the required database tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
