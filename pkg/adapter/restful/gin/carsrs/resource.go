// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the cars
// manipulation REST APIs to be accepted and delegated to the
// cars use cases respectively.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/cars-api/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. GET request to /cars
//     in order to list all cars in their creation order,
//  2. GET request to /cars/:cid
//     in order to fetch one car,
//  3. POST request to /cars
//     in order to create a car with all five mutable fields,
//  4. PUT request to /cars/:cid
//     in order to replace all five mutable fields of a car,
//  5. PATCH request to /cars/:cid
//     in order to update a subset of the mutable fields of a car,
//  6. DELETE request to /cars/:cid
//     in order to delete a car.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("cars", rs.ListCars)
	r.GET("cars/:cid", rs.GetCar)
	r.POST("cars", rs.CreateCar)
	r.PUT("cars/:cid", rs.ReplaceCar)
	r.PATCH("cars/:cid", rs.PatchCar)
	r.DELETE("cars/:cid", rs.DeleteCar)
}

func (rs *resource) ListCars(c *gin.Context) {
	cars, err := rs.cars.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (rs *resource) GetCar(c *gin.Context) {
	cid, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	car, err := rs.cars.Get(c, cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) CreateCar(c *gin.Context) {
	fields, ok := rs.DserCarFields(c)
	if !ok {
		return
	}
	car, err := rs.cars.Create(c, *fields)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, car)
}

func (rs *resource) ReplaceCar(c *gin.Context) {
	cid, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	fields, ok := rs.DserCarFields(c)
	if !ok {
		return
	}
	car, err := rs.cars.Replace(c, cid, *fields)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) PatchCar(c *gin.Context) {
	cid, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	patch, ok := rs.DserCarPatch(c)
	if !ok {
		return
	}
	car, err := rs.cars.Patch(c, cid, *patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) DeleteCar(c *gin.Context) {
	cid, ok := rs.DserCarID(c)
	if !ok {
		return
	}
	if err := rs.cars.Delete(c, cid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
