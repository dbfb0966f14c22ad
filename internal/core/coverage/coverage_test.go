package coverage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briteline/briteline/internal/core"
)

// stubAreaStore serves areas keyed by prefix and records probe order.
type stubAreaStore struct {
	areas    map[string]*core.CoverageArea
	packages map[int64][]core.CatalogPackage
	probes   []string
	err      error
}

func (s *stubAreaStore) FindActiveAreaByPrefix(_ context.Context, prefix string) (*core.CoverageArea, error) {
	s.probes = append(s.probes, prefix)
	if s.err != nil {
		return nil, s.err
	}
	return s.areas[prefix], nil
}

func (s *stubAreaStore) ListAreaPackages(_ context.Context, areaID int64) ([]core.CatalogPackage, error) {
	return s.packages[areaID], nil
}

func TestLookupLongestPrefixWins(t *testing.T) {
	store := &stubAreaStore{
		areas: map[string]*core.CoverageArea{
			"SW":  {ID: 1, Prefix: "SW", Name: "South West London", Active: true},
			"SW1": {ID: 2, Prefix: "SW1", Name: "Westminster", Active: true},
		},
		packages: map[int64][]core.CatalogPackage{
			2: {{ID: 10, Name: "Westminster 500"}},
		},
	}
	m := &Matcher{Store: store}

	got, err := m.Lookup(context.Background(), "SW1A 1AA")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Westminster", got.Area.Name)
	require.Len(t, got.Packages, 1)

	// SW1A has no record; SW1 hits before SW is ever tried.
	require.Equal(t, []string{"SW1A", "SW1"}, store.probes)
}

func TestLookupFallsBackToShortestPrefix(t *testing.T) {
	store := &stubAreaStore{
		areas: map[string]*core.CoverageArea{
			"LS": {ID: 3, Prefix: "LS", Name: "Leeds", Active: true},
		},
	}
	m := &Matcher{Store: store}

	got, err := m.Lookup(context.Background(), "ls8 1ab")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Leeds", got.Area.Name)
	require.Equal(t, []string{"LS81", "LS8", "LS"}, store.probes)
}

func TestLookupNotCovered(t *testing.T) {
	store := &stubAreaStore{areas: map[string]*core.CoverageArea{}}
	m := &Matcher{Store: store}

	got, err := m.Lookup(context.Background(), "ZZ99 9ZZ")
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, []string{"ZZ99", "ZZ9", "ZZ"}, store.probes)
}

func TestLookupEmptyPostcode(t *testing.T) {
	m := &Matcher{Store: &stubAreaStore{}}
	_, err := m.Lookup(context.Background(), "  ")
	require.Error(t, err)
}

func TestLookupStoreError(t *testing.T) {
	m := &Matcher{Store: &stubAreaStore{err: errors.New("db locked")}}
	_, err := m.Lookup(context.Background(), "SW1A 1AA")
	require.Error(t, err)
	require.Contains(t, err.Error(), "db locked")
}
