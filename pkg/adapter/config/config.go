// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the vehweb to instantiate different
// components, from the adapter or use cases layers, using those
// loaded configuration settings.
// The parsed and validated configurations are passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items), so they may be accumulated and validated in the
// relevant end-component such as a UseCase instance. This design
// decision causes a bit of redundancy in favor of a defensive
// solution.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/shadfar/vehweb/pkg/adapter/client/maps"
	"github.com/shadfar/vehweb/pkg/adapter/client/pricing"
	"github.com/shadfar/vehweb/pkg/adapter/config/settings"
	"github.com/shadfar/vehweb/pkg/adapter/db/postgres"
	"github.com/shadfar/vehweb/pkg/adapter/restful/gin"
	"github.com/shadfar/vehweb/pkg/core/lookup"
	"github.com/shadfar/vehweb/pkg/core/repo"
	"github.com/shadfar/vehweb/pkg/core/usecase/vehiclesuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration can be maintained while other layers
// can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Clients  Clients  // Remote lookup clients settings
	Usecases Usecases // Configuration settings for supported use cases
}

// Load reads the configuration file at the given path, then
// unmarshals, validates, and normalizes it, returning its settings as
// an instance of the Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize ensures that the loaded settings are
// acceptable and replaces uninitialized optional settings with their
// default values. Settings which have their defaults in the use cases
// layer (such as the lookup timeout) are left nil here.
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	settings.Nil2Zero(&c.Gin.Logger)
	settings.Nil2Zero(&c.Gin.Recovery)
	if err := c.Clients.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating clients settings: %w", err)
	}
	if err := settings.VerifyRange(
		&c.Usecases.Vehicles.LookupTimeout,
		c.Usecases.Vehicles.MinLookupTimeout,
		c.Usecases.Vehicles.MaxLookupTimeout,
	); err != nil {
		return fmt.Errorf(
			"VerifyRange(lookup timeout=%v, minb=%v, maxb=%v): %w",
			err.Value,
			c.Usecases.Vehicles.MinLookupTimeout,
			c.Usecases.Vehicles.MaxLookupTimeout,
			err,
		)
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `c` settings.
func (c *Config) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w",
			c.Database.Host, c.Database.Port, c.Database.Name, err,
		)
	}
	return p, nil
}

// Database contains the database related configuration settings.
type Database struct {
	Host string // domain name or IP address of the DBMS server
	Port int    // port number of the DBMS server
	Name string // database name, like vehweb
	User string // connecting role name

	// Pass is the connecting role password. It may be left empty in
	// the configuration file and provided with the DATABASE_PASSWORD
	// environment variable instead, so the file can be committed.
	Pass string `yaml:"pass,omitempty"`
}

// ValidateAndNormalize fills defaults for missing connection settings
// and reads the password from the environment if the file left it
// out.
func (d *Database) ValidateAndNormalize() error {
	if d.Host == "" {
		d.Host = "127.0.0.1"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	switch {
	case d.Name == "":
		return fmt.Errorf("database name is missing")
	case d.User == "":
		return fmt.Errorf("database user is missing")
	}
	if d.Pass == "" {
		d.Pass = os.Getenv("DATABASE_PASSWORD")
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
func (d Database) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	return postgres.NewPool(ctx, d.ConnectionURL())
}

// ConnectionURL composes a postgres connection URL from the `d`
// settings.
func (d Database) ConnectionURL() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	return u.String()
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and fill the missing ones with their
// default values during the validate and normalize phase.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Client contains the connection settings of one remote lookup
// client. The Timeout field is defined as a pointer, so an
// uninitialized timeout can be detected and defaulted.
type Client struct {
	BaseURL string             `yaml:"base-url"` // service base URL
	Timeout *settings.Duration `yaml:"timeout"`  // per-request timeout
}

// Clients contains the configuration settings of the two remote
// lookup services.
type Clients struct {
	Pricing Client // pricing service connection settings
	Maps    Client // maps service connection settings
}

// ValidateAndNormalize ensures that both lookup services have a base
// URL and a positive request timeout, defaulting missing timeouts to
// ten seconds.
func (c *Clients) ValidateAndNormalize() error {
	for name, cl := range map[string]*Client{
		"pricing": &c.Pricing,
		"maps":    &c.Maps,
	} {
		if cl.BaseURL == "" {
			return fmt.Errorf("%s base-url is missing", name)
		}
		if cl.Timeout == nil {
			d := settings.Duration(10 * time.Second)
			cl.Timeout = &d
		}
		if *cl.Timeout <= 0 {
			return fmt.Errorf(
				"%s timeout (%v) is not positive", name, cl.Timeout,
			)
		}
	}
	return nil
}

// NewPricingClient instantiates the long-lived pricing service client
// based on the `c` settings.
func (c Clients) NewPricingClient() lookup.Prices {
	return pricing.New(
		c.Pricing.BaseURL, time.Duration(*c.Pricing.Timeout),
	)
}

// NewMapsClient instantiates the long-lived maps service client based
// on the `c` settings.
func (c Clients) NewMapsClient() lookup.Maps {
	return maps.New(c.Maps.BaseURL, time.Duration(*c.Maps.Timeout))
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Vehicles Vehicles // vehicles use case related settings
}

// Vehicles contains the configuration settings for the vehicles use
// case. Fields are defined as pointers, so it is possible to detect
// if they are or are not initialized; a nil value indicates that the
// use cases layer should select its own default.
type Vehicles struct {
	// LookupTimeout bounds each price or address enrichment call.
	LookupTimeout *settings.Duration `yaml:"lookup-timeout"`
	// MinLookupTimeout is the inclusive minimum acceptable value
	// for the LookupTimeout setting.
	// A missing value indicates that there is no lower bound.
	MinLookupTimeout *settings.Duration `yaml:"lookup-timeout-minimum"`
	// MaxLookupTimeout is the inclusive maximum acceptable value
	// for the LookupTimeout setting.
	// A missing value indicates that there is no upper bound.
	MaxLookupTimeout *settings.Duration `yaml:"lookup-timeout-maximum"`
	// ListConcurrency bounds how many records may be enriched
	// concurrently while listing all vehicles.
	ListConcurrency *int `yaml:"list-concurrency"`
}

// NewUseCase instantiates a new vehicles use case based on the
// settings in the `v` struct.
func (v Vehicles) NewUseCase(
	p repo.Pool, r repo.Vehicles,
	prices lookup.Prices, maps lookup.Maps,
) (*vehiclesuc.UseCase, error) {
	opts := make([]vehiclesuc.Option, 0, 2)
	if v.LookupTimeout != nil {
		d := time.Duration(*v.LookupTimeout)
		opts = append(opts, vehiclesuc.WithLookupTimeout(d))
	}
	if v.ListConcurrency != nil {
		opts = append(
			opts, vehiclesuc.WithListConcurrency(*v.ListConcurrency),
		)
	}
	return vehiclesuc.New(p, r, prices, maps, opts...)
}
