package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/briteline/briteline/internal/core"
	"github.com/briteline/briteline/internal/core/carrier"
	"github.com/briteline/briteline/internal/core/coverage"
	apierrs "github.com/briteline/briteline/internal/errors"
	"github.com/briteline/briteline/internal/metrics"
)

// AddressSearcher resolves a postcode to carrier address candidates.
type AddressSearcher interface {
	Search(ctx context.Context, postcode string) ([]core.CandidateAddress, error)
}

// LineChecker checks a line reference against the carrier.
type LineChecker interface {
	Check(ctx context.Context, ref core.LineReference) (*carrier.LineResult, error)
}

// CoverageLooker probes the coverage registry for a postcode.
type CoverageLooker interface {
	Lookup(ctx context.Context, postcode string) (*coverage.Match, error)
}

// PackageLister lists the active catalog.
type PackageLister interface {
	ListActivePackages(ctx context.Context) ([]core.CatalogPackage, error)
}

// PackageSelector narrows packages to an offerable technology set.
type PackageSelector interface {
	Offerable(ctx context.Context, offerable core.TechnologySet) ([]core.CatalogPackage, error)
}

// API bundles the resolution services behind the HTTP surface.
type API struct {
	Addresses AddressSearcher
	Lines     LineChecker
	Coverage  CoverageLooker
	Packages  PackageLister
	Selector  PackageSelector
}

// AddressSearchResponse is the body for GET /api/addresses.
type AddressSearchResponse struct {
	Postcode  string                  `json:"postcode"`
	Addresses []core.CandidateAddress `json:"addresses"`
}

// AddressesHandler resolves a postcode to candidate addresses. An unknown
// postcode returns an empty list with 200; only a failed carrier exchange
// produces an error status.
func (a *API) AddressesHandler(w http.ResponseWriter, r *http.Request) {
	postcode := core.NormalizePostcode(r.URL.Query().Get("postcode"))
	if postcode == "" {
		respondWithError(w, r, apierrs.NewInvalidInputError("postcode query parameter is required"))
		return
	}

	start := time.Now()
	addresses, err := a.Addresses.Search(r.Context(), postcode)
	if err != nil {
		metrics.RecordCarrierRequest("address_search", carrierOutcome(err), time.Since(start))
		respondWithError(w, r, apierrs.WrapCarrierUnreachable(r.Context(), err))
		return
	}
	outcome := "ok"
	if len(addresses) == 0 {
		outcome = "empty"
	}
	metrics.RecordCarrierRequest("address_search", outcome, time.Since(start))

	if addresses == nil {
		addresses = []core.CandidateAddress{}
	}
	writeJSON(w, http.StatusOK, AddressSearchResponse{
		Postcode:  postcode,
		Addresses: addresses,
	})
}

// AvailabilityResponse is the body for GET /api/availability.
type AvailabilityResponse struct {
	Reference    core.LineReference          `json:"reference"`
	HasService   bool                        `json:"has_service"`
	Availability core.TechnologyAvailability `json:"availability"`
	Technologies []core.Technology           `json:"technologies"`
	Packages     []core.CatalogPackage       `json:"packages"`
}

// AvailabilityHandler checks one line and returns its offerable packages. A
// gated line is an ordinary 200 with has_service false and no packages.
func (a *API) AvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	ref := core.LineReference{
		RefNum:       r.URL.Query().Get("ref"),
		DistrictCode: r.URL.Query().Get("district"),
	}
	if !ref.Valid() {
		respondWithError(w, r, apierrs.NewInvalidInputError("ref and district query parameters are required"))
		return
	}

	start := time.Now()
	result, err := a.Lines.Check(r.Context(), ref)
	if err != nil {
		metrics.RecordCarrierRequest("line_characteristics", carrierOutcome(err), time.Since(start))
		respondWithError(w, r, apierrs.WrapCarrierUnreachable(r.Context(), err))
		return
	}
	metrics.RecordCarrierRequest("line_characteristics", "ok", time.Since(start))
	metrics.RecordAvailabilityGate(result.Availability.HasService)

	packages, err := a.Selector.Offerable(r.Context(), result.Offerable)
	if err != nil {
		respondWithError(w, r, apierrs.WrapDatabaseError(r.Context(), err, "failed to load packages"))
		return
	}
	if packages == nil {
		packages = []core.CatalogPackage{}
	}

	technologies := result.Offerable.Sorted()
	if technologies == nil {
		technologies = []core.Technology{}
	}

	writeJSON(w, http.StatusOK, AvailabilityResponse{
		Reference:    ref,
		HasService:   result.Availability.HasService,
		Availability: result.Availability,
		Technologies: technologies,
		Packages:     packages,
	})
}

// CoverageResponse is the body for GET /api/coverage.
type CoverageResponse struct {
	Postcode  string                `json:"postcode"`
	Available bool                  `json:"available"`
	AreaName  string                `json:"area_name,omitempty"`
	Packages  []core.CatalogPackage `json:"packages"`
}

// CoverageHandler answers whether a postcode falls in a coverage area. A
// miss is an ordinary 200 with available false.
func (a *API) CoverageHandler(w http.ResponseWriter, r *http.Request) {
	postcode := core.NormalizePostcode(r.URL.Query().Get("postcode"))
	if postcode == "" {
		respondWithError(w, r, apierrs.NewInvalidInputError("postcode query parameter is required"))
		return
	}

	match, err := a.Coverage.Lookup(r.Context(), postcode)
	if err != nil {
		respondWithError(w, r, apierrs.WrapDatabaseError(r.Context(), err, "coverage lookup failed"))
		return
	}
	metrics.RecordCoverageLookup(match != nil)

	resp := CoverageResponse{
		Postcode: postcode,
		Packages: []core.CatalogPackage{},
	}
	if match != nil {
		resp.Available = true
		resp.AreaName = match.Area.Name
		if match.Packages != nil {
			resp.Packages = match.Packages
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// PackagesResponse is the body for GET /api/packages.
type PackagesResponse struct {
	Packages []core.CatalogPackage `json:"packages"`
}

// PackagesHandler lists the active catalog.
func (a *API) PackagesHandler(w http.ResponseWriter, r *http.Request) {
	packages, err := a.Packages.ListActivePackages(r.Context())
	if err != nil {
		respondWithError(w, r, apierrs.WrapDatabaseError(r.Context(), err, "failed to load packages"))
		return
	}
	if packages == nil {
		packages = []core.CatalogPackage{}
	}
	writeJSON(w, http.StatusOK, PackagesResponse{Packages: packages})
}

func carrierOutcome(err error) string {
	switch {
	case carrier.IsConfig(err):
		return "config"
	case carrier.IsTimeout(err):
		return "timeout"
	default:
		return "transport"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
