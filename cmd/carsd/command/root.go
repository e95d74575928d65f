// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root command for the cars REST
// service. Commands are organized using the cobra library.
// The root command starts the web server itself, exposing the CRUD
// REST APIs over the in-memory cars collection.
//
//	./carsd [-c /path/of/main/config.yaml]           # start web server
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/momeni/cars-api/pkg/adapter/config"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/routes"
	"github.com/momeni/cars-api/pkg/core/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "carsd",
	Short: "A REST service to manage cars with full CRUD operations",
	Long: `A REST service to manage cars with full CRUD operations.
Car records are validated against their field-level bounds and kept
in the process memory, keyed by auto-generated unique identifiers
with auto-maintained creation and last update timestamps. The state
is volatile, hence, all records are lost when the process stops.
The clean architecture layering keeps the core use cases and models
independent of the adapters layer, which hosts the gin-gonic REST
resources, the YAML configuration, the Prometheus metrics, and the
in-memory repository behind their respective interfaces.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	c.Log.Setup()
	var e *gin.Engine = c.Gin.NewEngine()
	if err = routes.Register(e, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(ctx, "starting web server", slog.String("addr", c.Web.Addr()))
	if err = e.Run(c.Web.Addr()); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
