// Copyright (c) 2023-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/cars-api/pkg/adapter/config"
	"github.com/momeni/cars-api/pkg/adapter/observability/metrics"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/carsrs"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/healthrs"
	"github.com/momeni/cars-api/pkg/adapter/storage/memory/carsrp"
	"github.com/momeni/cars-api/pkg/core/usecase/carsuc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register instantiates the in-memory cars repository and its use
// case based on the c configuration settings. Each use case package
// is named like carsuc and each repository package is named like
// carsrp. Register instantiates a series of "resource" structs, from
// packages which are named like carsrs, in order to adapt the use
// cases interfaces with the REST APIs. These resources are registered
// as request handlers using the e gin-gonic engine instance, beside
// the Prometheus metrics middleware and its scraping endpoint.
// Possible errors will be returned after possible wrapping.
func Register(e *gin.Engine, c *config.Config) error {
	carsRepo, err := carsrp.New()
	if err != nil {
		return fmt.Errorf("creating cars repository: %w", err)
	}
	carsUseCase := carsuc.New(carsRepo)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg, carsRepo.Len)
	e.Use(metrics.Middleware(m))

	r := e.Group("/")
	healthrs.Register(r, c.App.Name, c.App.Version)
	carsrs.Register(r, carsUseCase)
	e.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	))
	return nil
}
