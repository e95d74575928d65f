// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrs

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/cars-api/pkg/core/cerr"
	"github.com/momeni/cars-api/pkg/core/model"
)

// DserCarID deserializes the cid path parameter of the c context.
// A malformed parameter is reported as a not-found error (404) since
// no live record may ever carry a non-UUID identifier, so such an id
// necessarily names an unknown resource.
func (rs *resource) DserCarID(c *gin.Context) (uuid.UUID, bool) {
	param := c.Param("cid")
	cid, err := uuid.Parse(param)
	if err != nil {
		serdser.SerErr(c, cerr.NotFound(
			fmt.Errorf("no car with id %s", param),
		))
		return uuid.Nil, false
	}
	return cid, true
}

// DserCarFields deserializes a complete set of mutable car fields
// from the JSON request body of the c context. Decoding failures are
// reported by a serialized error response; bounds checking itself is
// the use cases layer responsibility.
func (rs *resource) DserCarFields(c *gin.Context) (*model.CarFields, bool) {
	fields := &model.CarFields{}
	if ok := serdser.Bind(c, fields, binding.JSON); !ok {
		return nil, false
	}
	return fields, true
}

// DserCarPatch deserializes a subset of the mutable car fields from
// the JSON request body of the c context. Fields which are absent in
// the body are left as nil pointers, keeping them distinguishable
// from explicitly provided values. An empty JSON object is accepted.
func (rs *resource) DserCarPatch(c *gin.Context) (*model.CarPatch, bool) {
	patch := &model.CarPatch{}
	if ok := serdser.Bind(c, patch, binding.JSON); !ok {
		return nil, false
	}
	return patch, true
}
