package output

import (
	"fmt"
	"strings"

	"github.com/briteline/briteline/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// AddressReport is the result of one address search.
type AddressReport struct {
	Postcode  string                  `json:"postcode"`
	Addresses []core.CandidateAddress `json:"addresses"`
}

// AvailabilityReport is the result of one line availability check.
type AvailabilityReport struct {
	Reference    core.LineReference          `json:"reference"`
	HasService   bool                        `json:"has_service"`
	Availability core.TechnologyAvailability `json:"availability"`
	Technologies []core.Technology           `json:"technologies"`
	Packages     []core.CatalogPackage       `json:"packages,omitempty"`
}

// CoverageReport is the result of one coverage registry lookup.
type CoverageReport struct {
	Postcode  string                `json:"postcode"`
	Available bool                  `json:"available"`
	AreaName  string                `json:"area_name,omitempty"`
	Packages  []core.CatalogPackage `json:"packages,omitempty"`
}

// PackageReport is the active catalog listing.
type PackageReport struct {
	Packages []core.CatalogPackage `json:"packages"`
}

// Formatter renders resolution results.
type Formatter interface {
	FormatAddresses(report *AddressReport) (string, error)
	FormatAvailability(report *AvailabilityReport) (string, error)
	FormatCoverage(report *CoverageReport) (string, error)
	FormatPackages(report *PackageReport) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	default:
		return &TableFormatter{}
	}
}

// FormatPrice renders a monthly price held in pence as pounds.
func FormatPrice(pence int64) string {
	return fmt.Sprintf("£%d.%02d", pence/100, pence%100)
}
