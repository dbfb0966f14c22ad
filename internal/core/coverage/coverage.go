// Package coverage answers the storefront's cheap first question: is this
// postcode somewhere we sell at all? It never talks to the carrier; it
// matches against the administrator-managed coverage areas in the store.
package coverage

import (
	"context"
	"fmt"

	"github.com/briteline/briteline/internal/core"
)

// AreaStore is the slice of the store the matcher needs.
type AreaStore interface {
	FindActiveAreaByPrefix(ctx context.Context, prefix string) (*core.CoverageArea, error)
	ListAreaPackages(ctx context.Context, areaID int64) ([]core.CatalogPackage, error)
}

// Match is a successful coverage probe: the area that claimed the postcode
// and the packages sold there.
type Match struct {
	Area     core.CoverageArea     `json:"area"`
	Packages []core.CatalogPackage `json:"packages"`
}

// Matcher resolves postcodes to coverage areas by longest-prefix fallback.
type Matcher struct {
	Store AreaStore
}

// Lookup probes the coverage areas for the postcode, trying the longest
// prefix first and falling back to shorter ones, so a specific "SW1" record
// beats a broad "SW" record. A nil match with a nil error means the postcode
// is simply not covered.
func (m *Matcher) Lookup(ctx context.Context, postcode string) (*Match, error) {
	prefixes := core.PostcodePrefixes(postcode)
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("postcode is required")
	}
	for _, prefix := range prefixes {
		area, err := m.Store.FindActiveAreaByPrefix(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("coverage lookup for %s: %w", prefix, err)
		}
		if area == nil {
			continue
		}
		pkgs, err := m.Store.ListAreaPackages(ctx, area.ID)
		if err != nil {
			return nil, fmt.Errorf("coverage packages for area %d: %w", area.ID, err)
		}
		return &Match{Area: *area, Packages: pkgs}, nil
	}
	return nil, nil
}
