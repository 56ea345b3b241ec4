// Package network provides the HTTP client used for release checks.
package network

import (
	"net/http"
	"time"

	"github.com/bilidl/bilidl/constant"
)

// Client is shared across the application. Requests carry the application's User-Agent.
var Client = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &userAgentTransport{
		next:  newTransport(),
		agent: constant.App + "/" + constant.Version,
	},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}

type userAgentTransport struct {
	next  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(clone)
}
