// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package pricing realizes the lookup.Prices contract over the HTTP
// API of the pricing service. A Client instance is constructed once
// with its own connection and timeout settings and reused for the
// whole process lifetime.
package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/core/lookup"
	"github.com/shadfar/vehweb/pkg/core/model"
	"github.com/shopspring/decimal"
)

// Client calls the pricing service. It is safe for concurrent use.
type Client struct {
	base string
	hc   *http.Client
}

// New instantiates a pricing client for the given service base URL.
// The timeout bounds each request end-to-end, in addition to any
// deadline of the per-call context.
func New(base string, timeout time.Duration) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: timeout},
	}
}

// priceResp follows the wire format of the pricing service.
type priceResp struct {
	VehicleID string          `json:"vehicleId"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
}

// Quote fetches the current price of the vid vehicle with a GET
// request to the /services/prices/{vid} endpoint. A 404 response is a
// valid outcome, meaning that the pricing service holds no quote for
// that identifier; it is reported as the bare ErrPriceUnavailable.
// Transport failures, timeouts, and unexpected statuses are reported
// as ErrPriceUnavailable too, wrapping the distinguishing cause.
func (pc *Client) Quote(ctx context.Context, vid uuid.UUID) (*model.Price, error) {
	u := fmt.Sprintf("%s/services/prices/%s", pc.base, vid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	res, err := pc.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", lookup.ErrPriceUnavailable, err)
	}
	defer func() {
		_ = res.Body.Close()
	}()
	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, lookup.ErrPriceUnavailable
	default:
		return nil, fmt.Errorf(
			"%w: unexpected status %d",
			lookup.ErrPriceUnavailable, res.StatusCode,
		)
	}
	pr := &priceResp{}
	if err := json.NewDecoder(res.Body).Decode(pr); err != nil {
		return nil, fmt.Errorf(
			"%w: decoding response: %w",
			lookup.ErrPriceUnavailable, err,
		)
	}
	return &model.Price{
		VehicleID: vid,
		Currency:  pr.Currency,
		Amount:    pr.Price,
	}, nil
}
