package carrier

import (
	"errors"
	"fmt"
	"net"
)

// ConfigError means the client could not assemble its own TLS identity. The
// carrier was never contacted; the fault is local.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("carrier client configuration: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TransportError means the exchange with the carrier failed: connection,
// handshake, timeout, or a non-success HTTP status. Timeout is set when the
// failure was the deadline rather than a refusal.
type TransportError struct {
	Op      string
	Status  int
	Timeout bool
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("carrier %s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("carrier %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsUnreachable reports whether err represents a failure to reach the
// carrier, either a local configuration fault or a transport fault. Empty
// results and gated lines are ordinary outcomes and never satisfy this.
func IsUnreachable(err error) bool {
	var ce *ConfigError
	var te *TransportError
	return errors.As(err, &ce) || errors.As(err, &te)
}

// IsTimeout reports whether err is a carrier transport timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	if errors.As(err, &te) && te.Timeout {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsConfig reports whether err is a local client configuration fault.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
