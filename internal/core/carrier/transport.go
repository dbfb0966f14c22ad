package carrier

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds one complete carrier exchange, connection setup
// through body read.
const DefaultTimeout = 30 * time.Second

// Poster sends one SOAP request body and returns the raw response body.
// Resolvers depend on this rather than on Transport directly so tests can
// substitute canned exchanges.
type Poster interface {
	Post(ctx context.Context, endpoint, body string) (string, error)
}

// Transport performs one-shot mutually authenticated SOAP exchanges. Each
// call loads the client identity, dials, exchanges, and tears down; nothing
// is cached or reused between calls, so a certificate rotation on disk takes
// effect on the next request.
type Transport struct {
	// CertFile and KeyFile hold the client certificate presented to the
	// carrier. CAFile holds the trust anchors for the carrier's endpoint.
	CertFile string
	KeyFile  string
	CAFile   string

	// Timeout bounds the whole exchange. Zero means DefaultTimeout.
	Timeout time.Duration
}

// tlsConfig assembles the per-call TLS configuration from the files on disk.
func (t *Transport) tlsConfig() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
	if err != nil {
		return nil, &ConfigError{Path: t.CertFile, Err: err}
	}
	caPEM, err := os.ReadFile(t.CAFile)
	if err != nil {
		return nil, &ConfigError{Path: t.CAFile, Err: err}
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, &ConfigError{Path: t.CAFile, Err: fmt.Errorf("no certificates found")}
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Post sends one SOAP envelope to the endpoint and returns the response body
// regardless of its shape; callers parse tolerantly. Failures are classified:
// ConfigError when the local identity cannot be assembled, TransportError for
// everything between client and carrier, including non-success statuses.
func (t *Transport) Post(ctx context.Context, endpoint, body string) (string, error) {
	tlsCfg, err := t.tlsConfig()
	if err != nil {
		return "", err
	}

	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rt := &http.Transport{
		TLSClientConfig:   tlsCfg,
		DisableKeepAlives: true,
	}
	defer rt.CloseIdleConnections()
	client := &http.Client{Transport: rt}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return "", &TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", `text/xml; charset="utf-8"`)
	req.Header.Set("SOAPAction", `""`)

	resp, err := client.Do(req)
	if err != nil {
		return "", &TransportError{Op: "post", Timeout: ctx.Err() == context.DeadlineExceeded, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read", Timeout: ctx.Err() == context.DeadlineExceeded, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{Op: "post", Status: resp.StatusCode}
	}
	return string(raw), nil
}
