// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config provides the configuration settings of the service,
// loading them from a YAML file and filling the missing items with
// their default values. Since the service state is volatile and kept
// in the process memory, there is no database version to be managed
// and a single configuration version suffices.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/momeni/cars-api/pkg/adapter/restful/gin"
	"github.com/momeni/cars-api/pkg/core/log"
	"gopkg.in/yaml.v3"
)

// Default values for the missing configuration items.
const (
	DefaultAppName    = "Cars REST API"
	DefaultAppVersion = "1.0.0"
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
)

// Config contains all configuration settings of the service.
// After loading, all pointer fields are non-nil; they are declared as
// pointers, so a missing item can be distinguished from an explicit
// zero value and filled by its default.
type Config struct {
	App App `yaml:"app"`
	Web Web `yaml:"web"`
	Gin Gin `yaml:"gin"`
	Log Log `yaml:"log"`
}

// App contains the service identity settings which are reported by
// the health resource.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Web contains the HTTP server binding settings.
type Web struct {
	Host string `yaml:"host"`
	Port *int   `yaml:"port"`
}

// Addr returns the host:port address which the HTTP server should
// listen on.
func (w Web) Addr() string {
	return net.JoinHostPort(w.Host, strconv.Itoa(*w.Port))
}

// Gin contains the gin-gonic related configuration settings.
type Gin struct {
	Logger   *bool `yaml:"logger"`   // register the gin.Logger() middleware
	Recovery *bool `yaml:"recovery"` // register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the g settings.
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

// Log contains the logging settings.
type Log struct {
	Level string `yaml:"level"`

	level slog.Level
}

// Setup installs the slog default logger based on the l settings.
func (l Log) Setup() {
	log.Setup(l.level)
}

// Load reads the configuration settings from the path YAML file,
// validates them, and fills the missing items with their default
// values. A missing file is not an error; it yields the default
// settings, so the service can run with no configuration file at all.
func Load(path string) (*Config, error) {
	c := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to ValidateAndNormalize with an empty config
	case err != nil:
		return nil, fmt.Errorf("reading %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating %q: %w", path, err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values
// with their expected default values (if any). So, it takes a pointer
// receiver instead of a non-reference receiver (in contrast to other
// methods).
func (c *Config) ValidateAndNormalize() error {
	if c.App.Name == "" {
		c.App.Name = DefaultAppName
	}
	if c.App.Version == "" {
		c.App.Version = DefaultAppVersion
	}
	if c.Web.Host == "" {
		c.Web.Host = DefaultHost
	}
	if c.Web.Port == nil {
		port := DefaultPort
		c.Web.Port = &port
	}
	if p := *c.Web.Port; p < 1 || p > 65535 {
		return fmt.Errorf("port %d is out of range", p)
	}
	if c.Gin.Logger == nil {
		enabled := true
		c.Gin.Logger = &enabled
	}
	if c.Gin.Recovery == nil {
		enabled := true
		c.Gin.Recovery = &enabled
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("unsupported log level: %w", err)
	}
	c.Log.level = level
	return nil
}
