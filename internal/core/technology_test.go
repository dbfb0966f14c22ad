package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceGate(t *testing.T) {
	allowList := []string{"BAAGNV", "NDLSGN"}

	tests := []struct {
		name      string
		switchIDs []string
		want      bool
	}{
		{"allow-listed switch", []string{"BAAGNV"}, true},
		{"one of several allow-listed", []string{"ZZZZZZ", "NDLSGN"}, true},
		{"unknown switch", []string{"ZZZZZZ"}, false},
		{"no switches observed", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ServiceGate(tt.switchIDs, allowList))
		})
	}
}

func TestServiceGateEmptyAllowList(t *testing.T) {
	require.False(t, ServiceGate([]string{"BAAGNV"}, nil))
}

func TestOfferableTechnologies(t *testing.T) {
	tests := []struct {
		name string
		av   TechnologyAvailability
		want []Technology
	}{
		{
			name: "full fibre only",
			av:   TechnologyAvailability{FTTP: true, HasService: true},
			want: []Technology{TechnologyFTTP},
		},
		{
			name: "p2p fibre counts as full fibre",
			av:   TechnologyAvailability{P2PFibre: true, HasService: true},
			want: []Technology{TechnologyFTTP},
		},
		{
			name: "cabinet fibre unlocks sogea",
			av:   TechnologyAvailability{FTTC: true, HasService: true},
			want: []Technology{TechnologyFTTC, TechnologySOGEA},
		},
		{
			name: "copper line still sells fttc",
			av:   TechnologyAvailability{ADSL: true, HasService: true},
			want: []Technology{TechnologyADSL, TechnologyFTTC},
		},
		{
			name: "everything",
			av:   TechnologyAvailability{FTTP: true, FTTC: true, ADSL: true, HasService: true},
			want: []Technology{TechnologyADSL, TechnologyFTTC, TechnologyFTTP, TechnologySOGEA},
		},
		{
			name: "gate closed dominates all signals",
			av:   TechnologyAvailability{FTTP: true, FTTC: true, SOGEA: true, ADSL: true, HasService: false},
			want: nil,
		},
		{
			name: "no signals",
			av:   TechnologyAvailability{HasService: true},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OfferableTechnologies(tt.av)
			if tt.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestPostcodePrefixes(t *testing.T) {
	require.Equal(t, []string{"SW1A", "SW1", "SW"}, PostcodePrefixes("sw1a 1aa"))
	require.Equal(t, []string{"E1"}, PostcodePrefixes("E1"))
	require.Equal(t, []string{"E11", "E1"}, PostcodePrefixes("E11"))
	require.Empty(t, PostcodePrefixes("E"))
}

func TestNormalizePostcode(t *testing.T) {
	require.Equal(t, "SW1A1AA", NormalizePostcode("  sw1a 1aa "))
	require.Equal(t, "LS81AB", NormalizePostcode("LS8 1AB"))
}

func TestNormalizePostcodeIdempotent(t *testing.T) {
	for _, in := range []string{"sw1a 1aa", "  LS8 1AB ", "e1", "B33 8TH"} {
		once := NormalizePostcode(in)
		require.Equal(t, once, NormalizePostcode(once))
	}
}

func TestLineReferenceValid(t *testing.T) {
	require.True(t, LineReference{RefNum: "A123", DistrictCode: "LV"}.Valid())
	require.False(t, LineReference{RefNum: "A123"}.Valid())
	require.False(t, LineReference{DistrictCode: "LV"}.Valid())
	require.False(t, LineReference{}.Valid())
}
