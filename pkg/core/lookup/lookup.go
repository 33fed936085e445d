// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lookup declares the contracts of the two external
// enrichment collaborators: the pricing service and the maps service.
// The use cases layer depends on these narrow interfaces alone, while
// their HTTP realizations live in the adapters layer and are injected
// as long-lived client instances with their own timeout settings.
package lookup

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/core/model"
)

// ErrPriceUnavailable indicates that no price could be obtained for a
// vehicle, either because the pricing service has no quote for that
// identifier or because the call failed or timed out. Transport-level
// causes are wrapped together with this sentinel, so callers can
// match the kind with errors.Is and still log the root cause.
var ErrPriceUnavailable = errors.New("price unavailable")

// ErrAddressUnavailable is the maps counterpart of
// ErrPriceUnavailable.
var ErrAddressUnavailable = errors.New("address unavailable")

// Prices obtains a current price quote for a vehicle identifier.
type Prices interface {
	// Quote fetches a fresh price snapshot for the vid vehicle.
	// Results are never cached at this layer; every call is a remote
	// fetch with a bounded timeout taken from the ctx deadline.
	Quote(ctx context.Context, vid uuid.UUID) (*model.Price, error)
}

// Maps resolves a raw coordinate into a human-readable address.
type Maps interface {
	// Resolve is a pure function of the given coordinate; it must
	// not mutate it and may not depend on any vehicle identity.
	Resolve(ctx context.Context, c model.Coordinate) (string, error)
}
