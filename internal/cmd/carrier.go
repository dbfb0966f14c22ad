package cmd

import (
	"errors"

	"github.com/briteline/briteline/internal/config"
	"github.com/briteline/briteline/internal/core/carrier"
)

// newTransport builds the one-shot mTLS transport from carrier config. The
// transport dials a fresh connection per call and reads the TLS material from
// disk each time, so rotated certificates are picked up without a restart and
// missing material surfaces per call as a configuration failure, never as a
// startup failure.
func newTransport(cfg config.CarrierConfig) *carrier.Transport {
	return &carrier.Transport{
		CertFile: cfg.CertFile,
		KeyFile:  cfg.KeyFile,
		CAFile:   cfg.CAFile,
		Timeout:  cfg.Timeout,
	}
}

func newAddressResolver(cfg config.CarrierConfig) (*carrier.AddressResolver, error) {
	if cfg.AddressEndpoint == "" {
		return nil, errors.New("carrier.address_endpoint is not configured")
	}
	if cfg.RequesterID == "" {
		return nil, errors.New("carrier.requester_id is not configured")
	}

	return &carrier.AddressResolver{
		Endpoint:    cfg.AddressEndpoint,
		RequesterID: cfg.RequesterID,
		Poster:      newTransport(cfg),
	}, nil
}

func newLineResolver(cfg config.CarrierConfig) (*carrier.LineResolver, error) {
	if cfg.LineEndpoint == "" {
		return nil, errors.New("carrier.line_endpoint is not configured")
	}
	if cfg.RequesterID == "" {
		return nil, errors.New("carrier.requester_id is not configured")
	}

	return &carrier.LineResolver{
		Endpoint:        cfg.LineEndpoint,
		RequesterID:     cfg.RequesterID,
		Poster:          newTransport(cfg),
		AllowedSwitches: cfg.AllowedSwitches,
	}, nil
}
