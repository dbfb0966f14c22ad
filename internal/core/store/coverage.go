package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briteline/briteline/internal/core"
)

// FindActiveAreaByPrefix returns the first active coverage area recorded for
// the exact prefix, or nil when none exists. Prefix fallback is the
// matcher's concern; this is one probe.
func (s *Store) FindActiveAreaByPrefix(ctx context.Context, prefix string) (*core.CoverageArea, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, errors.New("coverage prefix is required")
	}

	var (
		area   core.CoverageArea
		active int
	)
	row := s.DB.QueryRowContext(ctx, `
		SELECT id, prefix, name, active
		FROM coverage_areas
		WHERE prefix = ? AND active = 1
		ORDER BY id
		LIMIT 1
	`, prefix)
	if err := row.Scan(&area.ID, &area.Prefix, &area.Name, &active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch coverage area: %w", err)
	}
	area.Active = active != 0
	return &area, nil
}

// ListAreaPackages returns the active packages linked to a coverage area,
// in display order.
func (s *Store) ListAreaPackages(ctx context.Context, areaID int64) ([]core.CatalogPackage, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+packageColumns+`
		FROM catalog_packages
		JOIN coverage_area_packages ON coverage_area_packages.package_id = catalog_packages.id
		WHERE coverage_area_packages.area_id = ? AND catalog_packages.active = 1
		ORDER BY sort_order, name
	`, areaID)
	if err != nil {
		return nil, fmt.Errorf("list area packages: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	return scanPackages(rows)
}

// UpsertArea inserts or updates a coverage area keyed by prefix and name and
// returns its id.
func (s *Store) UpsertArea(ctx context.Context, area core.CoverageArea) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	prefix := strings.ToUpper(strings.TrimSpace(area.Prefix))
	if prefix == "" {
		return 0, errors.New("coverage prefix is required")
	}

	var id int64
	err := s.DB.QueryRowContext(ctx, `
		SELECT id FROM coverage_areas WHERE prefix = ? AND name = ?
	`, prefix, area.Name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := s.DB.ExecContext(ctx, `
			INSERT INTO coverage_areas (prefix, name, active, updated_at)
			VALUES (?, ?, ?, ?)
		`, prefix, area.Name, boolInt(area.Active), time.Now().UTC().Unix())
		if err != nil {
			return 0, fmt.Errorf("store coverage area: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("coverage area id: %w", err)
		}
		return id, nil
	case err != nil:
		return 0, fmt.Errorf("fetch coverage area id: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, `
		UPDATE coverage_areas SET active = ?, updated_at = ? WHERE id = ?
	`, boolInt(area.Active), time.Now().UTC().Unix(), id); err != nil {
		return 0, fmt.Errorf("update coverage area: %w", err)
	}
	return id, nil
}

// ReplaceAreaPackages rewrites the package links for a coverage area.
func (s *Store) ReplaceAreaPackages(ctx context.Context, areaID int64, packageIDs []int64) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin area packages: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM coverage_area_packages WHERE area_id = ?`, areaID); err != nil {
		return fmt.Errorf("clear area packages: %w", err)
	}
	for _, pkgID := range packageIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO coverage_area_packages (area_id, package_id) VALUES (?, ?)
		`, areaID, pkgID); err != nil {
			return fmt.Errorf("link area package: %w", err)
		}
	}
	return tx.Commit()
}
