package store

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/briteline/briteline/internal/core"
)

// SeedDocument is the YAML shape accepted by the seed command: the package
// catalog plus coverage areas linking packages by name.
type SeedDocument struct {
	Packages []SeedPackage `yaml:"packages"`
	Areas    []SeedArea    `yaml:"areas"`
}

// SeedPackage describes one catalog package in a seed document.
type SeedPackage struct {
	Name         string   `yaml:"name"`
	Speed        string   `yaml:"speed"`
	MonthlyPence int64    `yaml:"monthly_pence"`
	Features     []string `yaml:"features"`
	Technology   string   `yaml:"technology"`
	Active       *bool    `yaml:"active"`
	Popular      bool     `yaml:"popular"`
	SortOrder    int      `yaml:"sort_order"`
}

// SeedArea describes one coverage area and the package names sold there.
type SeedArea struct {
	Prefix   string   `yaml:"prefix"`
	Name     string   `yaml:"name"`
	Active   *bool    `yaml:"active"`
	Packages []string `yaml:"packages"`
}

// ParseSeedDocument decodes seed YAML.
func ParseSeedDocument(data []byte) (*SeedDocument, error) {
	var doc SeedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed document: %w", err)
	}
	return &doc, nil
}

// Seed applies a seed document: packages upsert by name, areas upsert by
// prefix and name, and each area's package links are replaced wholesale.
// Omitted active flags default to true.
func (s *Store) Seed(ctx context.Context, doc *SeedDocument) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if doc == nil {
		return errors.New("seed document is required")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	packageIDs := make(map[string]int64, len(doc.Packages))
	for _, p := range doc.Packages {
		id, err := s.UpsertPackage(ctx, core.CatalogPackage{
			Name:         p.Name,
			Speed:        p.Speed,
			MonthlyPence: p.MonthlyPence,
			Features:     p.Features,
			Technology:   core.Technology(p.Technology),
			Active:       p.Active == nil || *p.Active,
			Popular:      p.Popular,
			SortOrder:    p.SortOrder,
		})
		if err != nil {
			return fmt.Errorf("seed package %q: %w", p.Name, err)
		}
		packageIDs[p.Name] = id
	}

	for _, a := range doc.Areas {
		areaID, err := s.UpsertArea(ctx, core.CoverageArea{
			Prefix: a.Prefix,
			Name:   a.Name,
			Active: a.Active == nil || *a.Active,
		})
		if err != nil {
			return fmt.Errorf("seed area %q: %w", a.Prefix, err)
		}

		var ids []int64
		for _, name := range a.Packages {
			id, ok := packageIDs[name]
			if !ok {
				return fmt.Errorf("seed area %q: unknown package %q", a.Prefix, name)
			}
			ids = append(ids, id)
		}
		if err := s.ReplaceAreaPackages(ctx, areaID, ids); err != nil {
			return fmt.Errorf("seed area %q: %w", a.Prefix, err)
		}
	}

	return nil
}
