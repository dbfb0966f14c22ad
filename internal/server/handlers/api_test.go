package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/briteline/briteline/internal/core"
	"github.com/briteline/briteline/internal/core/carrier"
	"github.com/briteline/briteline/internal/core/coverage"
)

type stubAddressSearcher struct {
	addresses []core.CandidateAddress
	err       error
	postcode  string
}

func (s *stubAddressSearcher) Search(ctx context.Context, postcode string) ([]core.CandidateAddress, error) {
	s.postcode = postcode
	return s.addresses, s.err
}

type stubLineChecker struct {
	result *carrier.LineResult
	err    error
	ref    core.LineReference
}

func (s *stubLineChecker) Check(ctx context.Context, ref core.LineReference) (*carrier.LineResult, error) {
	s.ref = ref
	return s.result, s.err
}

type stubCoverageLooker struct {
	match *coverage.Match
	err   error
}

func (s *stubCoverageLooker) Lookup(ctx context.Context, postcode string) (*coverage.Match, error) {
	return s.match, s.err
}

type stubPackageLister struct {
	packages []core.CatalogPackage
	err      error
}

func (s *stubPackageLister) ListActivePackages(ctx context.Context) ([]core.CatalogPackage, error) {
	return s.packages, s.err
}

type stubPackageSelector struct {
	packages []core.CatalogPackage
	err      error
	offered  core.TechnologySet
}

func (s *stubPackageSelector) Offerable(ctx context.Context, offerable core.TechnologySet) ([]core.CatalogPackage, error) {
	s.offered = offerable
	return s.packages, s.err
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Error.Code
}

func TestAddressesHandlerReturnsCandidates(t *testing.T) {
	searcher := &stubAddressSearcher{addresses: []core.CandidateAddress{
		{ThoroughfareNumber: "14", ThoroughfareName: "HIGH STREET", Postcode: "LS8 1AB"},
	}}
	api := &API{Addresses: searcher}

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?postcode=ls8+1ab", nil)
	rec := httptest.NewRecorder()

	api.AddressesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if searcher.postcode != "LS81AB" {
		t.Fatalf("expected normalized postcode LS81AB, got %s", searcher.postcode)
	}

	var resp AddressSearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Addresses) != 1 {
		t.Fatalf("expected 1 address, got %d", len(resp.Addresses))
	}
	if resp.Addresses[0].ThoroughfareName != "HIGH STREET" {
		t.Fatalf("unexpected address: %+v", resp.Addresses[0])
	}
}

func TestAddressesHandlerNoMatchesIsOK(t *testing.T) {
	api := &API{Addresses: &stubAddressSearcher{addresses: nil}}

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?postcode=ZZ99+9ZZ", nil)
	rec := httptest.NewRecorder()

	api.AddressesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for empty result, got %d", rec.Code)
	}

	var resp AddressSearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Addresses == nil || len(resp.Addresses) != 0 {
		t.Fatalf("expected empty address list, got %v", resp.Addresses)
	}
}

func TestAddressesHandlerMissingPostcode(t *testing.T) {
	api := &API{Addresses: &stubAddressSearcher{}}

	req := httptest.NewRequest(http.MethodGet, "/api/addresses", nil)
	rec := httptest.NewRecorder()

	api.AddressesHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "INVALID_INPUT" {
		t.Fatalf("expected INVALID_INPUT, got %s", code)
	}
}

func TestAddressesHandlerCarrierUnreachable(t *testing.T) {
	searcher := &stubAddressSearcher{err: &carrier.TransportError{Op: "address_search", Err: errors.New("connection refused")}}
	api := &API{Addresses: searcher}

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?postcode=LS8+1AB", nil)
	rec := httptest.NewRecorder()

	api.AddressesHandler(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "CARRIER_UNREACHABLE" {
		t.Fatalf("expected CARRIER_UNREACHABLE, got %s", code)
	}
}

func TestAddressesHandlerCarrierTimeout(t *testing.T) {
	searcher := &stubAddressSearcher{err: &carrier.TransportError{Op: "address_search", Timeout: true, Err: context.DeadlineExceeded}}
	api := &API{Addresses: searcher}

	req := httptest.NewRequest(http.MethodGet, "/api/addresses?postcode=LS8+1AB", nil)
	rec := httptest.NewRecorder()

	api.AddressesHandler(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status 504, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "CARRIER_TIMEOUT" {
		t.Fatalf("expected CARRIER_TIMEOUT, got %s", code)
	}
}

func TestAvailabilityHandlerOfferablePackages(t *testing.T) {
	availability := core.TechnologyAvailability{
		FTTC:       true,
		SOGEA:      true,
		SwitchIDs:  []string{"BAAGNV"},
		HasService: true,
	}
	checker := &stubLineChecker{result: &carrier.LineResult{
		Availability: availability,
		Offerable:    core.TechnologySet{core.TechnologyFTTC: true, core.TechnologySOGEA: true},
	}}
	selector := &stubPackageSelector{packages: []core.CatalogPackage{
		{Name: "Superfast 80", Technology: core.TechnologyFTTC, Active: true},
	}}
	api := &API{Lines: checker, Selector: selector}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?ref=A00014657&district=LV", nil)
	rec := httptest.NewRecorder()

	api.AvailabilityHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if checker.ref.RefNum != "A00014657" || checker.ref.DistrictCode != "LV" {
		t.Fatalf("unexpected line reference: %+v", checker.ref)
	}

	var resp AvailabilityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.HasService {
		t.Fatalf("expected has_service true")
	}
	if len(resp.Technologies) != 2 {
		t.Fatalf("expected 2 technologies, got %v", resp.Technologies)
	}
	if len(resp.Packages) != 1 || resp.Packages[0].Name != "Superfast 80" {
		t.Fatalf("unexpected packages: %+v", resp.Packages)
	}
	if !selector.offered.Has(core.TechnologySOGEA) {
		t.Fatalf("expected selector to receive the offerable set")
	}
}

func TestAvailabilityHandlerGatedLineIsOK(t *testing.T) {
	checker := &stubLineChecker{result: &carrier.LineResult{
		Availability: core.TechnologyAvailability{
			FTTC:       true,
			SwitchIDs:  []string{"ZZZZZZ"},
			HasService: false,
		},
		Offerable: core.TechnologySet{},
	}}
	selector := &stubPackageSelector{}
	api := &API{Lines: checker, Selector: selector}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?ref=A00014657&district=LV", nil)
	rec := httptest.NewRecorder()

	api.AvailabilityHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for gated line, got %d", rec.Code)
	}

	var resp AvailabilityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.HasService {
		t.Fatalf("expected has_service false for gated line")
	}
	if len(resp.Technologies) != 0 {
		t.Fatalf("expected no technologies, got %v", resp.Technologies)
	}
	if len(resp.Packages) != 0 {
		t.Fatalf("expected no packages, got %v", resp.Packages)
	}
	if !resp.Availability.FTTC {
		t.Fatalf("expected raw availability flags to be preserved")
	}
}

func TestAvailabilityHandlerInvalidReference(t *testing.T) {
	api := &API{Lines: &stubLineChecker{}, Selector: &stubPackageSelector{}}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?ref=A00014657", nil)
	rec := httptest.NewRecorder()

	api.AvailabilityHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "INVALID_INPUT" {
		t.Fatalf("expected INVALID_INPUT, got %s", code)
	}
}

func TestAvailabilityHandlerCarrierConfigError(t *testing.T) {
	checker := &stubLineChecker{err: &carrier.ConfigError{Path: "/etc/briteline/client.pem", Err: errors.New("no such file")}}
	api := &API{Lines: checker, Selector: &stubPackageSelector{}}

	req := httptest.NewRequest(http.MethodGet, "/api/availability?ref=A00014657&district=LV", nil)
	rec := httptest.NewRecorder()

	api.AvailabilityHandler(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "CARRIER_UNREACHABLE" {
		t.Fatalf("expected CARRIER_UNREACHABLE, got %s", code)
	}
}

func TestCoverageHandlerMatch(t *testing.T) {
	looker := &stubCoverageLooker{match: &coverage.Match{
		Area: core.CoverageArea{ID: 1, Prefix: "LS8", Name: "Leeds North East", Active: true},
		Packages: []core.CatalogPackage{
			{Name: "Full Fibre 900", Technology: core.TechnologyFTTP, Active: true},
		},
	}}
	api := &API{Coverage: looker}

	req := httptest.NewRequest(http.MethodGet, "/api/coverage?postcode=LS8+1AB", nil)
	rec := httptest.NewRecorder()

	api.CoverageHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp CoverageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Available {
		t.Fatalf("expected available true")
	}
	if resp.AreaName != "Leeds North East" {
		t.Fatalf("unexpected area name %s", resp.AreaName)
	}
	if len(resp.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(resp.Packages))
	}
}

func TestCoverageHandlerMissIsOK(t *testing.T) {
	api := &API{Coverage: &stubCoverageLooker{match: nil}}

	req := httptest.NewRequest(http.MethodGet, "/api/coverage?postcode=ZZ99+9ZZ", nil)
	rec := httptest.NewRecorder()

	api.CoverageHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for uncovered postcode, got %d", rec.Code)
	}

	var resp CoverageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Available {
		t.Fatalf("expected available false")
	}
	if resp.Packages == nil || len(resp.Packages) != 0 {
		t.Fatalf("expected empty package list, got %v", resp.Packages)
	}
}

func TestCoverageHandlerStoreError(t *testing.T) {
	api := &API{Coverage: &stubCoverageLooker{err: errors.New("database is locked")}}

	req := httptest.NewRequest(http.MethodGet, "/api/coverage?postcode=LS8+1AB", nil)
	rec := httptest.NewRecorder()

	api.CoverageHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestPackagesHandler(t *testing.T) {
	api := &API{Packages: &stubPackageLister{packages: []core.CatalogPackage{
		{Name: "Full Fibre 900", Technology: core.TechnologyFTTP, Active: true},
		{Name: "Superfast 80", Technology: core.TechnologyFTTC, Active: true},
	}}}

	req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
	rec := httptest.NewRecorder()

	api.PackagesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp PackagesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(resp.Packages))
	}
}
