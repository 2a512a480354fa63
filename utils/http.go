package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/nzai/pubapi/constants"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -source=http.go -destination=mocks/mock_http_client.go -package=mocks HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient create http client, timeout bounds the whole request including body
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.RequestTimeout
	}

	return &http.Client{Timeout: timeout, Transport: newTransport(timeout)}
}

// NewStreamingHTTPClient create http client for large bodies, timeout bounds
// connect, tls handshake and response header only
func NewStreamingHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.RequestTimeout
	}

	return &http.Client{Transport: newTransport(timeout)}
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
