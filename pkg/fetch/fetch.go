// Copyright (c) 2025 the mensad authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fetch retrieves the upstream menu page. One outbound request per
// call, no retries, no caching.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/text/encoding/charmap"

	"github.com/frcl/mensad/pkg/defaults"
	"github.com/frcl/mensad/pkg/errors"
)

// DefaultURL is the Studierendenwerk Karlsruhe menu page.
const DefaultURL = "https://www.sw-ka.de/de/hochschulgastronomie/speiseplan/"

var (
	upstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mensa_upstream_requests_total",
			Help: "Total number of upstream menu page fetches",
		},
		[]string{"outcome"},
	)

	upstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mensa_upstream_request_duration_seconds",
			Help:    "Upstream fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Client fetches the upstream menu markup.
type Client struct {
	url string
	hc  *http.Client
}

// New creates a Client for the given upstream URL. An empty url selects
// DefaultURL.
func New(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url: url,
		hc: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
			},
		},
	}
}

// URL returns the upstream URL this client fetches.
func (c *Client) URL() string {
	return c.url
}

// Fetch retrieves the current menu markup. It makes a single attempt and
// returns a structured UPSTREAM_UNAVAILABLE error on network failure or a
// non-2xx status.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "building upstream request", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues("error").Inc()
		return "", errors.WrapWithContext(errors.ErrCodeUpstreamUnavailable,
			"upstream menu page unreachable", err,
			map[string]any{"url": c.url})
	}
	defer resp.Body.Close()

	upstreamDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamRequests.WithLabelValues("bad_status").Inc()
		return "", errors.NewWithContext(errors.ErrCodeUpstreamUnavailable,
			fmt.Sprintf("upstream returned status %d", resp.StatusCode),
			map[string]any{"url": c.url, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues("error").Inc()
		return "", errors.Wrap(errors.ErrCodeUpstreamUnavailable,
			"reading upstream response body", err)
	}

	upstreamRequests.WithLabelValues("ok").Inc()
	return decodeLenient(body), nil
}

// decodeLenient returns the body as UTF-8 text. The upstream page is UTF-8
// encoded except for a handful of stray Latin-1 bytes, so invalid sequences
// are re-decoded byte-wise as Windows-1252 instead of being dropped.
func decodeLenient(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(charmap.Windows1252.DecodeByte(b[0]))
			b = b[1:]
			continue
		}
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}
