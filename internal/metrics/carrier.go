package metrics

import (
	"time"

	"github.com/briteline/briteline/internal/observability"
)

// Carrier client and coverage metrics following Prometheus conventions
var (
	CarrierRequestsTotal   = "carrier_requests_total"
	CarrierRequestDuration = "carrier_request_duration_ms"

	CoverageLookupsTotal = "coverage_lookups_total"

	AvailabilityGateTotal = "availability_gate_total"
)

// RecordCarrierRequest records one carrier exchange with its outcome.
// Outcome is one of: ok, empty, timeout, transport, config.
func RecordCarrierRequest(operation string, outcome string, duration time.Duration) {
	if observability.TelemetrySystem == nil {
		return
	}
	_ = observability.TelemetrySystem.Counter(
		CarrierRequestsTotal,
		1,
		map[string]string{
			"operation": operation,
			"outcome":   outcome,
		},
	)
	_ = observability.TelemetrySystem.Histogram(
		CarrierRequestDuration,
		duration,
		map[string]string{
			"operation": operation,
		},
	)
}

// RecordCoverageLookup records one coverage probe and whether a prefix hit.
func RecordCoverageLookup(hit bool) {
	if observability.TelemetrySystem == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	_ = observability.TelemetrySystem.Counter(
		CoverageLookupsTotal,
		1,
		map[string]string{"result": result},
	)
}

// RecordAvailabilityGate records a service gate decision for a checked line.
func RecordAvailabilityGate(hasService bool) {
	if observability.TelemetrySystem == nil {
		return
	}
	status := "closed"
	if hasService {
		status = "open"
	}
	_ = observability.TelemetrySystem.Counter(
		AvailabilityGateTotal,
		1,
		map[string]string{"gate": status},
	)
}
