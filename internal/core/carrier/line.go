package carrier

import (
	"context"
	"fmt"
	"time"

	"github.com/briteline/briteline/internal/core"
)

// LineResolver checks what a specific line can carry and whether an
// allow-listed switch serves it.
type LineResolver struct {
	// Endpoint is the line-characteristics service URL.
	Endpoint string

	// RequesterID is the DUNS identity the carrier knows us by.
	RequesterID string

	// Poster performs the exchange. Usually a *Transport.
	Poster Poster

	// AllowedSwitches is the operational switch allow-list. A line is
	// serviceable only when the response names at least one of these.
	AllowedSwitches []string

	// Clock supplies request timestamps. Defaults to time.Now.
	Clock func() time.Time
}

// LineResult pairs the raw availability observation with the offerable
// technology set derived from it.
type LineResult struct {
	Availability core.TechnologyAvailability `json:"availability"`
	Offerable    core.TechnologySet          `json:"-"`
}

func (r *LineResolver) now() time.Time {
	if r.Clock != nil {
		return r.Clock()
	}
	return time.Now()
}

// Check queries the carrier for the line's characteristics, applies the
// switch allow-list, and derives the offerable technologies. A gated line
// (no allow-listed switch) is an ordinary result with HasService false and
// an empty offerable set, not an error.
func (r *LineResolver) Check(ctx context.Context, ref core.LineReference) (*LineResult, error) {
	if !ref.Valid() {
		return nil, fmt.Errorf("line reference requires both ref number and district code")
	}
	envelope := buildLineCharacteristicsEnvelope(r.RequesterID, ref.RefNum, ref.DistrictCode, r.now())
	body, err := r.Poster.Post(ctx, r.Endpoint, envelope)
	if err != nil {
		return nil, err
	}
	av := parseLineCharacteristicsResponse(body)
	av.HasService = core.ServiceGate(av.SwitchIDs, r.AllowedSwitches)
	return &LineResult{
		Availability: av,
		Offerable:    core.OfferableTechnologies(av),
	}, nil
}
