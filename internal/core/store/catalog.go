package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/briteline/briteline/internal/core"
)

const packageColumns = `id, name, speed, monthly_pence, features, technology, active, popular, sort_order`

// ListActivePackages returns every active catalog package in display order.
func (s *Store) ListActivePackages(ctx context.Context) ([]core.CatalogPackage, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+packageColumns+`
		FROM catalog_packages
		WHERE active = 1
		ORDER BY sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("list active packages: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	return scanPackages(rows)
}

// GetPackage returns one package by id, or nil when it does not exist.
func (s *Store) GetPackage(ctx context.Context, id int64) (*core.CatalogPackage, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	row := s.DB.QueryRowContext(ctx, `
		SELECT `+packageColumns+`
		FROM catalog_packages
		WHERE id = ?
	`, id)

	pkg, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch package: %w", err)
	}
	return pkg, nil
}

// UpsertPackage inserts or updates a package keyed by name and returns its
// id. Seeding and admin tooling go through this; resolution never writes.
func (s *Store) UpsertPackage(ctx context.Context, pkg core.CatalogPackage) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	name := strings.TrimSpace(pkg.Name)
	if name == "" {
		return 0, errors.New("package name is required")
	}

	features, err := json.Marshal(pkg.Features)
	if err != nil {
		return 0, fmt.Errorf("encode package features: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO catalog_packages (name, speed, monthly_pence, features, technology, active, popular, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			speed = excluded.speed,
			monthly_pence = excluded.monthly_pence,
			features = excluded.features,
			technology = excluded.technology,
			active = excluded.active,
			popular = excluded.popular,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at
	`, name, pkg.Speed, pkg.MonthlyPence, string(features), string(pkg.Technology),
		boolInt(pkg.Active), boolInt(pkg.Popular), pkg.SortOrder, time.Now().UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("store package: %w", err)
	}

	var id int64
	if err := s.DB.QueryRowContext(ctx, `SELECT id FROM catalog_packages WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("fetch package id: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (*core.CatalogPackage, error) {
	var (
		pkg          core.CatalogPackage
		featuresJSON string
		technology   string
		active       int
		popular      int
	)
	if err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Speed, &pkg.MonthlyPence,
		&featuresJSON, &technology, &active, &popular, &pkg.SortOrder); err != nil {
		return nil, err
	}
	if featuresJSON != "" {
		if err := json.Unmarshal([]byte(featuresJSON), &pkg.Features); err != nil {
			return nil, fmt.Errorf("decode package features: %w", err)
		}
	}
	pkg.Technology = core.Technology(technology)
	pkg.Active = active != 0
	pkg.Popular = popular != 0
	return &pkg, nil
}

func scanPackages(rows *sql.Rows) ([]core.CatalogPackage, error) {
	var out []core.CatalogPackage
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, *pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packages: %w", err)
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
