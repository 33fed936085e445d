// Copyright (c) 2025-2026 Omid Shadfar
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/shadfar/vehweb/pkg/adapter/config"
	"github.com/shadfar/vehweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init sub-command creates the vehicles
table in the configured database.`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the vehicles schema",
	RunE:  initSchema,
}

// vehiclesDDL creates the canonical vehicles table. There are no
// price or address columns; those are derived at read time and must
// never be persisted.
const vehiclesDDL = `CREATE TABLE IF NOT EXISTS vehicles (
	vid uuid PRIMARY KEY,
	make varchar NOT NULL,
	model varchar NOT NULL,
	year integer NOT NULL,
	condition varchar NOT NULL,
	lat double precision NOT NULL,
	lon double precision NOT NULL
)`

func initSchema(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		_, err := conn.Exec(ctx, vehiclesDDL)
		return err
	})
	if err != nil {
		return fmt.Errorf("creating vehicles table: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
