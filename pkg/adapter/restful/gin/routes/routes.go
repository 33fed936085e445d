// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, lookup client, use
// case, and resource packages based on the user provided
// configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shadfar/vehweb/pkg/adapter/config"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/shadfar/vehweb/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/shadfar/vehweb/pkg/core/repo"
)

// Register instantiates the relevant repository, lookup clients, and
// use case based on the c configuration settings. The p connections
// pool is passed to the use case instance, so it may acquire/release
// connections and transactions on demand; these will be passed to the
// repository later in order to run relevant queries on them. The two
// lookup clients are instantiated once here and injected into the use
// case, so their connection and timeout lifecycle stays independent
// of individual requests. At last, the vehicles resource is
// registered as request handlers using the e gin-gonic engine
// instance. Possible errors will be returned after possible wrapping.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	vehiclesRepo := vehiclesrp.New()
	prices := c.Clients.NewPricingClient()
	maps := c.Clients.NewMapsClient()

	vehicles, err := c.Usecases.Vehicles.NewUseCase(
		p, vehiclesRepo, prices, maps,
	)
	if err != nil {
		return fmt.Errorf("creating vehicles use case: %w", err)
	}
	r := e.Group("/api/vehweb/v1")
	vehiclesrs.Register(r, vehicles)
	return nil
}
