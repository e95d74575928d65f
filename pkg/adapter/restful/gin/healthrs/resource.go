// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package healthrs realizes the health resource, reporting the
// service identity and liveness for monitoring and load balancers.
package healthrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type resource struct {
	name    string
	version string
}

// Register instantiates a resource reporting the name and version of
// this service with the relevant REST APIs including:
//  1. GET request to /
//     in order to report the service identity,
//  2. GET request to /health
//     in order to check the service liveness.
func Register(r *gin.RouterGroup, name, version string) {
	rs := &resource{name: name, version: version}
	r.GET("", rs.Root)
	r.GET("health", rs.Health)
}

func (rs *resource) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": rs.name,
		"version": rs.version,
	})
}

func (rs *resource) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   rs.name,
		"version":   rs.version,
	})
}
