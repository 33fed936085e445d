// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesuc contains the vehicles UseCase which orchestrates
// the canonical vehicle records and their read-time enrichment.
// Reads fetch the persisted records and attach a current price quote
// and a resolved address from the two remote lookup collaborators,
// while writes merge caller-owned fields into the stored record and
// never touch the derived data.
//
// Enrichment failure policy: a failed or timed out price/address
// lookup degrades the read instead of failing it. The corresponding
// view field is left nil and a warning is logged with the vehicle
// identifier, uniformly for List and GetByID. Repository errors are
// never degraded and always surface to the caller.
package vehiclesuc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shadfar/vehweb/pkg/core/cerr"
	"github.com/shadfar/vehweb/pkg/core/log"
	"github.com/shadfar/vehweb/pkg/core/lookup"
	"github.com/shadfar/vehweb/pkg/core/model"
	"github.com/shadfar/vehweb/pkg/core/repo"
	"golang.org/x/sync/errgroup"
)

// UseCase represents the vehicles use case. It holds a database
// connection pool, the vehicles repository instance (to be guided
// with the DB pool), the two long-lived lookup clients, and the
// vehicles use case specific settings.
type UseCase struct {
	pool   repo.Pool
	vehrp  repo.Vehicles
	prices lookup.Prices
	maps   lookup.Maps

	lookupTimeout   time.Duration
	listConcurrency int
}

// New instantiates a vehicles use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	p repo.Pool, r repo.Vehicles,
	prices lookup.Prices, maps lookup.Maps,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, vehrp: r, prices: prices, maps: maps}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.lookupTimeout == 0 {
		uc.lookupTimeout = 5 * time.Second
	}
	if uc.listConcurrency == 0 {
		uc.listConcurrency = 8
	}
	return uc, nil
}

// List use case returns all persisted vehicles, each one enriched
// with a price quote and a resolved address. The slice order matches
// the repository native order. Enrichment of distinct records is
// independent, so records are enriched concurrently, bounded by the
// configured concurrency limit in order not to overwhelm the two
// downstream services. A lookup failure for one record degrades that
// record alone and cannot affect any other record.
func (veh *UseCase) List(ctx context.Context) ([]model.VehicleView, error) {
	var vehicles []model.Vehicle
	err := veh.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := veh.vehrp.Conn(c)
		var err error
		vehicles, err = q.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	views := make([]model.VehicleView, len(vehicles))
	g := &errgroup.Group{}
	g.SetLimit(veh.listConcurrency)
	for i := range vehicles {
		i := i
		g.Go(func() error {
			views[i] = veh.enrich(ctx, &vehicles[i])
			return nil
		})
	}
	_ = g.Wait() // enrich degrades instead of failing
	return views, nil
}

// GetByID use case returns the vid vehicle enriched with a price
// quote and a resolved address, following the same enrichment
// contract as List. A missing identifier is reported with a
// cerr.NotFound error.
func (veh *UseCase) GetByID(ctx context.Context, vid uuid.UUID) (
	*model.VehicleView, error,
) {
	var v *model.Vehicle
	err := veh.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := veh.vehrp.Conn(c)
		var err error
		v, err = q.FindByID(ctx, vid)
		return err
	})
	if err != nil {
		return nil, err
	}
	view := veh.enrich(ctx, v)
	return &view, nil
}

// Save use case persists a new or updated vehicle and returns the
// persisted record without any enrichment; prices and addresses are
// attached on reads alone. A zero v.ID asks for a creation, storing
// all supplied fields as-is and letting the repository assign a fresh
// identifier. A non-zero v.ID asks for an update of an existing
// record, merging only the details, coordinate, and condition fields
// into the stored version; the stored record is re-fetched and merged
// within one transaction, so fields the merge does not own cannot be
// overwritten by a stale copy. Updating a missing identifier is
// reported with a cerr.NotFound error and performs no mutation.
func (veh *UseCase) Save(ctx context.Context, v *model.Vehicle) (
	saved *model.Vehicle, err error,
) {
	if err := v.Condition.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	if v.ID == uuid.Nil {
		err = veh.pool.Conn(
			ctx, func(ctx context.Context, c repo.Conn) error {
				q := veh.vehrp.Conn(c)
				saved, err = q.Create(ctx, v)
				return err
			},
		)
		if err != nil {
			saved = nil
		}
		return
	}
	err = veh.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := veh.vehrp.Tx(tx)
			stored, err := q.FindByID(ctx, v.ID)
			if err != nil {
				return err
			}
			stored.Details = v.Details
			stored.Coordinate = v.Coordinate
			stored.Condition = v.Condition
			saved, err = q.Update(ctx, stored)
			return err
		})
	})
	if err != nil {
		saved = nil
	}
	return
}

// Delete use case resolves the vid vehicle, using the same repository
// lookup as GetByID, and removes the resolved record. Deleting a
// missing identifier is reported with a cerr.NotFound error; hence, a
// second Delete call with the same identifier fails with NotFound.
func (veh *UseCase) Delete(ctx context.Context, vid uuid.UUID) error {
	return veh.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := veh.vehrp.Tx(tx)
			v, err := q.FindByID(ctx, vid)
			if err != nil {
				return err
			}
			return q.Delete(ctx, v.ID)
		})
	})
}

// enrich composes the read-time view of the v vehicle. The price and
// address lookups are independent of each other, so they are
// dispatched as two concurrent calls and joined before returning.
// Each call runs under its own bounded timeout and a failed call
// leaves the corresponding view field nil after logging a warning.
// The two goroutines write disjoint view fields.
func (veh *UseCase) enrich(ctx context.Context, v *model.Vehicle) model.VehicleView {
	view := model.VehicleView{Vehicle: *v}
	g := &errgroup.Group{}
	g.Go(func() error {
		pctx, cancel := context.WithTimeout(ctx, veh.lookupTimeout)
		defer cancel()
		p, err := veh.prices.Quote(pctx, v.ID)
		if err != nil {
			log.Warn(
				ctx, "degraded read: price lookup failed",
				log.VID("vid", v.ID), log.Err("error", err),
			)
			return nil
		}
		view.Price = p
		return nil
	})
	g.Go(func() error {
		mctx, cancel := context.WithTimeout(ctx, veh.lookupTimeout)
		defer cancel()
		addr, err := veh.maps.Resolve(mctx, v.Coordinate)
		if err != nil {
			log.Warn(
				ctx, "degraded read: address lookup failed",
				log.VID("vid", v.ID), log.Err("error", err),
			)
			return nil
		}
		view.Address = &addr
		return nil
	})
	_ = g.Wait()
	return view
}
