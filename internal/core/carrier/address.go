package carrier

import (
	"context"
	"fmt"
	"time"

	"github.com/briteline/briteline/internal/core"
)

// AddressResolver resolves a postcode to the carrier's candidate addresses.
type AddressResolver struct {
	// Endpoint is the address-matching service URL.
	Endpoint string

	// RequesterID is the DUNS identity the carrier knows us by.
	RequesterID string

	// Poster performs the exchange. Usually a *Transport.
	Poster Poster

	// Clock supplies request timestamps. Defaults to time.Now.
	Clock func() time.Time
}

func (r *AddressResolver) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}

// Search returns every candidate address the carrier matched for the
// postcode, reference keys included. An empty slice is a legitimate outcome
// for an unknown postcode, distinct from any error return.
func (r *AddressResolver) Search(ctx context.Context, postcode string) ([]core.CandidateAddress, error) {
	pc := core.NormalizePostcode(postcode)
	if pc == "" {
		return nil, fmt.Errorf("postcode is required")
	}
	envelope := buildAddressSearchEnvelope(r.RequesterID, pc, r.now())
	body, err := r.Poster.Post(ctx, r.Endpoint, envelope)
	if err != nil {
		return nil, err
	}
	return parseAddressSearchResponse(body), nil
}
