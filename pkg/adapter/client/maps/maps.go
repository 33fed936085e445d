// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package maps realizes the lookup.Maps contract over the HTTP API of
// the maps service, resolving raw coordinates into display addresses.
// A Client instance is constructed once with its own connection and
// timeout settings and reused for the whole process lifetime.
package maps

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shadfar/vehweb/pkg/core/lookup"
	"github.com/shadfar/vehweb/pkg/core/model"
)

// Client calls the maps service. It is safe for concurrent use.
type Client struct {
	base string
	hc   *http.Client
}

// New instantiates a maps client for the given service base URL.
// The timeout bounds each request end-to-end, in addition to any
// deadline of the per-call context.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: timeout},
	}
}

// addressResp follows the wire format of the maps service.
type addressResp struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

func (ar *addressResp) display() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{ar.Address, ar.City, ar.State, ar.Zip} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Resolve translates the c coordinate into a display-ready address
// with a GET request to the /maps endpoint. The coordinate argument
// is taken by value, so the caller's descriptor can never be mutated.
// Failures of any kind are reported as ErrAddressUnavailable,
// wrapping the distinguishing cause where one exists.
func (mc *Client) Resolve(ctx context.Context, c model.Coordinate) (string, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	u := fmt.Sprintf("%s/maps?%s", mc.base, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	res, err := mc.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf(
			"%w: %w", lookup.ErrAddressUnavailable, err,
		)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"%w: unexpected status %d",
			lookup.ErrAddressUnavailable, res.StatusCode,
		)
	}
	ar := &addressResp{}
	if err := json.NewDecoder(res.Body).Decode(ar); err != nil {
		return "", fmt.Errorf(
			"%w: decoding response: %w",
			lookup.ErrAddressUnavailable, err,
		)
	}
	return ar.display(), nil
}
