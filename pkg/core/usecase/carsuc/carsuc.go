// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars UseCase which supports the cars
// related use cases, namely the creation, listing, fetching, complete
// replacement, partial updating, and deletion of car records.
// It acts as the gatekeeper of the cars repository: no record may
// enter or stay in the repository without passing the model layer
// validation first.
package carsuc

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/cars-api/pkg/core/cerr"
	"github.com/momeni/cars-api/pkg/core/log"
	"github.com/momeni/cars-api/pkg/core/model"
	"github.com/momeni/cars-api/pkg/core/repo"
)

// UseCase represents a cars use case. It holds the cars repository
// instance which maintains the live car records collection.
type UseCase struct {
	carsrp repo.Cars
}

// New instantiates a cars use case, wrapping the c cars repository.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
func New(c repo.Cars) *UseCase {
	return &UseCase{carsrp: c}
}

// Create use case validates the given fields and inserts a new car
// record with a fresh ID and creation timestamp into the repository.
// Validation failures are reported as a cerr.Unprocessable error
// wrapping a model.ValidationError which enumerates all failing
// fields; the insertion itself never fails for validated fields.
func (cars *UseCase) Create(
	ctx context.Context, fields model.CarFields,
) (*model.Car, error) {
	if err := fields.Validate(); err != nil {
		log.Warn(ctx, "rejecting car creation", log.Err("cause", err))
		return nil, cerr.Unprocessable(err)
	}
	car, err := cars.carsrp.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "created car", log.ID("cid", car.ID))
	return car, nil
}

// Get use case fetches the cid car record from the repository.
func (cars *UseCase) Get(
	ctx context.Context, cid uuid.UUID,
) (*model.Car, error) {
	return cars.carsrp.Get(ctx, cid)
}

// List use case fetches all live car records in insertion order.
func (cars *UseCase) List(ctx context.Context) ([]*model.Car, error) {
	return cars.carsrp.List(ctx)
}

// Replace use case validates the given fields and overwrites all
// mutable fields of the cid car, keeping its ID and creation time
// and refreshing its last update time. The record must be live
// already; a replacement never creates a new record.
func (cars *UseCase) Replace(
	ctx context.Context, cid uuid.UUID, fields model.CarFields,
) (*model.Car, error) {
	if err := fields.Validate(); err != nil {
		log.Warn(ctx, "rejecting car replacement", log.Err("cause", err))
		return nil, cerr.Unprocessable(err)
	}
	car, err := cars.carsrp.Replace(ctx, cid, fields)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "replaced car", log.ID("cid", cid))
	return car, nil
}

// Patch use case validates the present fields of the p patch and
// overwrites only those fields of the cid car, keeping the rest
// untouched. An empty patch is valid and only refreshes the last
// update time of the record.
func (cars *UseCase) Patch(
	ctx context.Context, cid uuid.UUID, p model.CarPatch,
) (*model.Car, error) {
	if err := p.Validate(); err != nil {
		log.Warn(ctx, "rejecting car patch", log.Err("cause", err))
		return nil, cerr.Unprocessable(err)
	}
	car, err := cars.carsrp.Patch(ctx, cid, p)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "patched car", log.ID("cid", cid))
	return car, nil
}

// Delete use case removes the cid car record. Deleting an absent
// record fails with a not-found error, no matter if it never existed
// or was deleted before.
func (cars *UseCase) Delete(ctx context.Context, cid uuid.UUID) error {
	if err := cars.carsrp.Delete(ctx, cid); err != nil {
		return err
	}
	log.Info(ctx, "deleted car", log.ID("cid", cid))
	return nil
}
