package carrier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/briteline/briteline/internal/core"
)

func timeFixed(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(timestampLayout, "2026-03-05T10:30:00")
	require.NoError(t, err)
	return ts
}

// stubPoster records the last request and returns a canned exchange.
type stubPoster struct {
	lastEndpoint string
	lastBody     string
	response     string
	err          error
}

func (s *stubPoster) Post(_ context.Context, endpoint, body string) (string, error) {
	s.lastEndpoint = endpoint
	s.lastBody = body
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestAddressResolverSearch(t *testing.T) {
	stub := &stubPoster{response: addressSearchResponse}
	r := &AddressResolver{
		Endpoint:    "https://carrier.example/address",
		RequesterID: "123456789",
		Poster:      stub,
		Clock:       func() time.Time { return timeFixed(t) },
	}

	got, err := r.Search(context.Background(), "ls8 1ab")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "A00014657", got[0].Reference.RefNum)
	require.Empty(t, got[1].Reference.RefNum)

	require.Equal(t, "https://carrier.example/address", stub.lastEndpoint)
	require.Contains(t, stub.lastBody, "<add:Postcode>LS81AB</add:Postcode>")
}

func TestAddressResolverSearchEmptyPostcode(t *testing.T) {
	r := &AddressResolver{Poster: &stubPoster{}}
	_, err := r.Search(context.Background(), "   ")
	require.Error(t, err)
	require.False(t, IsUnreachable(err))
}

func TestAddressResolverSearchTransportError(t *testing.T) {
	stub := &stubPoster{err: &TransportError{Op: "post", Timeout: true, Err: context.DeadlineExceeded}}
	r := &AddressResolver{Poster: stub}

	_, err := r.Search(context.Background(), "LS8 1AB")
	require.Error(t, err)
	require.True(t, IsUnreachable(err))
	require.True(t, IsTimeout(err))
}

func TestAddressResolverSearchNoMatches(t *testing.T) {
	stub := &stubPoster{response: `<Envelope><Body><AddressSearchResponse/></Body></Envelope>`}
	r := &AddressResolver{Poster: stub}

	got, err := r.Search(context.Background(), "ZZ99 9ZZ")
	// No coverage is an empty result, never an error.
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLineResolverCheck(t *testing.T) {
	stub := &stubPoster{response: lineCharacteristicsResponse}
	r := &LineResolver{
		Endpoint:        "https://carrier.example/line",
		RequesterID:     "123456789",
		Poster:          stub,
		AllowedSwitches: []string{"BAAGNV"},
		Clock:           func() time.Time { return timeFixed(t) },
	}

	got, err := r.Check(context.Background(), core.LineReference{RefNum: "A00014657", DistrictCode: "LV"})
	require.NoError(t, err)
	require.True(t, got.Availability.HasService)
	require.Equal(t, []string{"BAAGNV", "NDLSGN"}, got.Availability.SwitchIDs)
	require.Equal(t,
		[]core.Technology{core.TechnologyADSL, core.TechnologyFTTC, core.TechnologySOGEA},
		got.Offerable.Sorted())

	require.Contains(t, stub.lastBody, "<lc:RefNum>A00014657</lc:RefNum>")
}

func TestLineResolverCheckGated(t *testing.T) {
	stub := &stubPoster{response: lineCharacteristicsResponse}
	r := &LineResolver{
		Poster:          stub,
		AllowedSwitches: []string{"ZZZZZZ"},
	}

	got, err := r.Check(context.Background(), core.LineReference{RefNum: "A00014657", DistrictCode: "LV"})
	require.NoError(t, err)
	require.False(t, got.Availability.HasService)
	require.Empty(t, got.Offerable)
	// The raw signals survive for diagnostics even when gated.
	require.True(t, got.Availability.FTTC)
}

func TestLineResolverCheckInvalidReference(t *testing.T) {
	r := &LineResolver{Poster: &stubPoster{}}
	_, err := r.Check(context.Background(), core.LineReference{RefNum: "A00014657"})
	require.Error(t, err)
	require.False(t, IsUnreachable(err))
}
