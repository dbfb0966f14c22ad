// Package catalog narrows the package catalog to what a specific line can
// actually be sold.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/briteline/briteline/internal/core"
)

// PackageStore is the slice of the store the filter needs.
type PackageStore interface {
	ListActivePackages(ctx context.Context) ([]core.CatalogPackage, error)
}

// Filter selects offerable packages from the active catalog.
type Filter struct {
	Store PackageStore
}

// Offerable returns the active packages whose technology is in the
// offerable set, ordered for display. An empty set short-circuits to an
// empty list without touching the store.
func (f *Filter) Offerable(ctx context.Context, offerable core.TechnologySet) ([]core.CatalogPackage, error) {
	if len(offerable) == 0 {
		return nil, nil
	}
	pkgs, err := f.Store.ListActivePackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active packages: %w", err)
	}
	return Select(pkgs, offerable), nil
}

// Select filters packages to the offerable technology set and sorts the
// result by display order, then name as a tiebreak. Inactive packages are
// dropped regardless of technology.
func Select(pkgs []core.CatalogPackage, offerable core.TechnologySet) []core.CatalogPackage {
	var out []core.CatalogPackage
	for _, p := range pkgs {
		if p.Active && offerable.Has(p.Technology) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}
