// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vehiclesrp_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/google/uuid"
	"github.com/shadfar/vehweb/internal/test/dbcontainer"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/shadfar/vehweb/pkg/core/cerr"
	"github.com/shadfar/vehweb/pkg/core/model"
	"github.com/shadfar/vehweb/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type IntegrationRepoTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pg   *sqltestutil.PostgresContainer
	Pool *postgres.Pool
	Repo *vehiclesrp.Repo
}

func TestIntegrationRepoTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationRepoTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (irts *IntegrationRepoTestSuite) SetupSuite() {
	sql, err := os.ReadFile("testdata/schema.sql")
	irts.Require().NoError(err, "failed to read schema.sql file")
	err = irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			_, err := c.Exec(ctx, string(sql))
			return err
		},
	)
	irts.Require().NoError(err, "failed to create schema contents")
	irts.Repo = vehiclesrp.New()
}

// withConnQueryer runs the h handler with a connection-based vehicles
// queryer, acquired from the test pool.
func (irts *IntegrationRepoTestSuite) withConnQueryer(
	h func(ctx context.Context, vq repo.VehiclesConnQueryer) error,
) error {
	return irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return h(ctx, irts.Repo.Conn(c))
		},
	)
}

func (irts *IntegrationRepoTestSuite) assertNotFound(err error) {
	var ce *cerr.Error
	irts.Require().ErrorAs(err, &ce, "expected a cerr.Error kind")
	irts.Equal(404, ce.HTTPStatusCode, "expected the not-found kind")
}

func sampleVehicle() *model.Vehicle {
	return &model.Vehicle{
		Details: model.Details{
			Make:  "Chevrolet",
			Model: "Impala",
			Year:  2018,
		},
		Condition:  model.ConditionUsed,
		Coordinate: model.Coordinate{Lat: 40.73061, Lon: -73.935242},
	}
}

func (irts *IntegrationRepoTestSuite) TestCreateAndFindByID() {
	v := sampleVehicle()
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			saved, err := vq.Create(ctx, v)
			irts.Require().NoError(err, "failed to create a vehicle")
			irts.NotEqual(
				uuid.Nil, saved.ID, "a fresh id must be assigned",
			)
			irts.Equal(v.Details, saved.Details, "wrong stored details")
			irts.Equal(
				v.Condition, saved.Condition, "wrong stored condition",
			)
			irts.Equal(
				v.Coordinate, saved.Coordinate,
				"wrong stored coordinate",
			)

			found, err := vq.FindByID(ctx, saved.ID)
			irts.Require().NoError(err, "failed to find the new vehicle")
			irts.Equal(saved, found, "round-trip must be lossless")
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestFindByIDMissing() {
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			found, err := vq.FindByID(ctx, uuid.New())
			irts.Nil(found, "no vehicle may be returned on errors")
			irts.assertNotFound(err)
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestFindAllContainsCreated() {
	v := sampleVehicle()
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			saved, err := vq.Create(ctx, v)
			irts.Require().NoError(err, "failed to create a vehicle")

			all, err := vq.FindAll(ctx)
			irts.Require().NoError(err, "failed to list vehicles")
			irts.Contains(
				all, *saved, "created vehicle must be listed",
			)
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestUpdate() {
	v := sampleVehicle()
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			saved, err := vq.Create(ctx, v)
			irts.Require().NoError(err, "failed to create a vehicle")

			saved.Details.Model = "Malibu"
			saved.Details.Year = 2021
			saved.Condition = model.ConditionNew
			saved.Coordinate = model.Coordinate{Lat: 1.25, Lon: 2.5}
			updated, err := vq.Update(ctx, saved)
			irts.Require().NoError(err, "failed to update the vehicle")
			irts.Equal(saved, updated, "wrong returned row")

			found, err := vq.FindByID(ctx, saved.ID)
			irts.Require().NoError(err, "failed to find the vehicle")
			irts.Equal(saved, found, "update must be persisted")
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestUpdateMissing() {
	v := sampleVehicle()
	v.ID = uuid.New()
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			updated, err := vq.Update(ctx, v)
			irts.Nil(updated, "no vehicle may be returned on errors")
			irts.assertNotFound(err)
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestDelete() {
	v := sampleVehicle()
	err := irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			saved, err := vq.Create(ctx, v)
			irts.Require().NoError(err, "failed to create a vehicle")

			err = vq.Delete(ctx, saved.ID)
			irts.Require().NoError(err, "failed to delete the vehicle")

			found, err := vq.FindByID(ctx, saved.ID)
			irts.Nil(found, "deleted vehicle may not be found")
			irts.assertNotFound(err)

			err = vq.Delete(ctx, saved.ID)
			irts.assertNotFound(err)
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}

func (irts *IntegrationRepoTestSuite) TestTxRollbackDiscardsWrites() {
	v := sampleVehicle()
	var vid uuid.UUID
	rollback := errors.New("rollback marker")
	err := irts.Pool.Conn(
		irts.Ctx, func(ctx context.Context, c repo.Conn) error {
			err := c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				saved, err := irts.Repo.Tx(tx).Create(ctx, v)
				irts.Require().NoError(
					err, "failed to create a vehicle in tx",
				)
				vid = saved.ID
				return rollback
			})
			irts.ErrorIs(err, rollback, "tx must report the handler error")
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")

	err = irts.withConnQueryer(
		func(ctx context.Context, vq repo.VehiclesConnQueryer) error {
			found, err := vq.FindByID(ctx, vid)
			irts.Nil(found, "rolled back vehicle may not be found")
			irts.assertNotFound(err)
			return nil
		},
	)
	irts.Require().NoError(err, "connection handler failed")
}
