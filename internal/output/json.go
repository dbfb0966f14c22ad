package output

import "encoding/json"

// JSONFormatter renders results as JSON.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) marshal(v interface{}) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FormatAddresses renders an address report as JSON.
func (f *JSONFormatter) FormatAddresses(report *AddressReport) (string, error) {
	if report == nil {
		return "", nil
	}
	return f.marshal(report)
}

// FormatAvailability renders an availability report as JSON.
func (f *JSONFormatter) FormatAvailability(report *AvailabilityReport) (string, error) {
	if report == nil {
		return "", nil
	}
	return f.marshal(report)
}

// FormatCoverage renders a coverage report as JSON.
func (f *JSONFormatter) FormatCoverage(report *CoverageReport) (string, error) {
	if report == nil {
		return "", nil
	}
	return f.marshal(report)
}

// FormatPackages renders a package report as JSON.
func (f *JSONFormatter) FormatPackages(report *PackageReport) (string, error) {
	if report == nil {
		return "", nil
	}
	return f.marshal(report)
}
