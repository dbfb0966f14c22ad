package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briteline/briteline/internal/core"
)

var testPackages = []core.CatalogPackage{
	{ID: 1, Name: "Full Fibre 900", Technology: core.TechnologyFTTP, Active: true, SortOrder: 1},
	{ID: 2, Name: "Full Fibre 500", Technology: core.TechnologyFTTP, Active: true, SortOrder: 2},
	{ID: 3, Name: "Superfast 80", Technology: core.TechnologyFTTC, Active: true, SortOrder: 3},
	{ID: 4, Name: "Broadband-Only 80", Technology: core.TechnologySOGEA, Active: true, SortOrder: 4},
	{ID: 5, Name: "Essential ADSL", Technology: core.TechnologyADSL, Active: true, SortOrder: 5},
	{ID: 6, Name: "Legacy Fibre 40", Technology: core.TechnologyFTTC, Active: false, SortOrder: 0},
}

type stubPackageStore struct {
	pkgs  []core.CatalogPackage
	calls int
}

func (s *stubPackageStore) ListActivePackages(context.Context) ([]core.CatalogPackage, error) {
	s.calls++
	return s.pkgs, nil
}

func TestSelect(t *testing.T) {
	got := Select(testPackages, core.TechnologySet{core.TechnologyFTTC: true, core.TechnologySOGEA: true})

	require.Len(t, got, 2)
	require.Equal(t, "Superfast 80", got[0].Name)
	require.Equal(t, "Broadband-Only 80", got[1].Name)
}

func TestSelectDropsInactive(t *testing.T) {
	got := Select(testPackages, core.TechnologySet{core.TechnologyFTTC: true})
	for _, p := range got {
		require.True(t, p.Active)
	}
	require.Len(t, got, 1)
}

func TestSelectSortOrder(t *testing.T) {
	pkgs := []core.CatalogPackage{
		{ID: 1, Name: "B", Technology: core.TechnologyFTTP, Active: true, SortOrder: 2},
		{ID: 2, Name: "A", Technology: core.TechnologyFTTP, Active: true, SortOrder: 2},
		{ID: 3, Name: "C", Technology: core.TechnologyFTTP, Active: true, SortOrder: 1},
	}
	got := Select(pkgs, core.TechnologySet{core.TechnologyFTTP: true})
	require.Equal(t, []string{"C", "A", "B"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestOfferableEmptySetSkipsStore(t *testing.T) {
	store := &stubPackageStore{pkgs: testPackages}
	f := &Filter{Store: store}

	got, err := f.Offerable(context.Background(), core.TechnologySet{})
	require.NoError(t, err)
	require.Empty(t, got)
	require.Zero(t, store.calls)
}

func TestOfferable(t *testing.T) {
	store := &stubPackageStore{pkgs: testPackages}
	f := &Filter{Store: store}

	got, err := f.Offerable(context.Background(), core.TechnologySet{core.TechnologyFTTP: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Full Fibre 900", got[0].Name)
}
