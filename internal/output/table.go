package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/briteline/briteline/internal/core"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatAddresses renders the candidate addresses for a postcode.
func (f *TableFormatter) FormatAddresses(report *AddressReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Premises", "Thoroughfare", "Town", "Postcode", "Ref", "District"})

	for _, addr := range report.Addresses {
		t.AppendRow(table.Row{
			premisesLabel(addr),
			strings.TrimSpace(addr.ThoroughfareNumber + " " + addr.ThoroughfareName),
			addr.PostTown,
			addr.Postcode,
			addr.Reference.RefNum,
			addr.Reference.DistrictCode,
		})
	}

	t.AppendFooter(table.Row{"", "", "", "", fmt.Sprintf("%d matches", len(report.Addresses)), ""})
	return t.Render(), nil
}

// FormatAvailability renders the outcome of a line availability check.
func (f *TableFormatter) FormatAvailability(report *AvailabilityReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Reference", report.Reference.RefNum + "/" + report.Reference.DistrictCode})
	t.AppendRow(table.Row{"Service", serviceLabel(report.HasService)})
	t.AppendRow(table.Row{"Switches", strings.Join(report.Availability.SwitchIDs, ", ")})
	t.AppendRow(table.Row{"FTTP", flagLabel(report.Availability.FTTP)})
	t.AppendRow(table.Row{"P2P Fibre", flagLabel(report.Availability.P2PFibre)})
	t.AppendRow(table.Row{"FTTC", flagLabel(report.Availability.FTTC)})
	t.AppendRow(table.Row{"SOGEA", flagLabel(report.Availability.SOGEA)})
	t.AppendRow(table.Row{"ADSL", flagLabel(report.Availability.ADSL)})
	t.AppendRow(table.Row{"Offerable", technologiesLabel(report.Technologies)})

	rendered := t.Render()
	if len(report.Packages) > 0 {
		packages, err := f.FormatPackages(&PackageReport{Packages: report.Packages})
		if err != nil {
			return "", err
		}
		rendered += "\n" + packages
	}
	return rendered, nil
}

// FormatCoverage renders a coverage registry lookup.
func (f *TableFormatter) FormatCoverage(report *CoverageReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Postcode", report.Postcode})
	if report.Available {
		t.AppendRow(table.Row{"Coverage", "available"})
		t.AppendRow(table.Row{"Area", report.AreaName})
	} else {
		t.AppendRow(table.Row{"Coverage", "not covered"})
	}

	rendered := t.Render()
	if len(report.Packages) > 0 {
		packages, err := f.FormatPackages(&PackageReport{Packages: report.Packages})
		if err != nil {
			return "", err
		}
		rendered += "\n" + packages
	}
	return rendered, nil
}

// FormatPackages renders the catalog listing.
func (f *TableFormatter) FormatPackages(report *PackageReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Package", "Technology", "Speed", "Monthly", "Features"})

	for _, pkg := range report.Packages {
		name := pkg.Name
		if pkg.Popular {
			name += " *"
		}
		t.AppendRow(table.Row{
			name,
			string(pkg.Technology),
			pkg.Speed,
			FormatPrice(pkg.MonthlyPence),
			strings.Join(pkg.Features, ", "),
		})
	}

	return t.Render(), nil
}

func premisesLabel(addr core.CandidateAddress) string {
	parts := make([]string, 0, 2)
	if addr.SubPremises != "" {
		parts = append(parts, addr.SubPremises)
	}
	if addr.PremisesName != "" {
		parts = append(parts, addr.PremisesName)
	}
	return strings.Join(parts, ", ")
}

func serviceLabel(hasService bool) string {
	if hasService {
		return "active"
	}
	return "none"
}

func flagLabel(flag bool) string {
	if flag {
		return "yes"
	}
	return "no"
}

func technologiesLabel(technologies []core.Technology) string {
	if len(technologies) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(technologies))
	for _, tech := range technologies {
		labels = append(labels, string(tech))
	}
	return strings.Join(labels, ", ")
}
