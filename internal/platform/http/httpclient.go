// Package http builds outbound HTTP clients for upstream services.
package http

import (
	"net"
	"net/http"
	"time"
)

// defaultTimeout applies when the caller passes a non-positive timeout.
const defaultTimeout = 10 * time.Second

// NewHTTPClient returns a client for calls to the content service.
//
// http.DefaultClient has no timeout, so every upstream call goes through a client
// built here. The transport keeps a small pool of idle connections per host because
// all traffic targets a single content host.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
