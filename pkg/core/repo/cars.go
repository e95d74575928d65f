// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo defines the expected interfaces of repositories, so
// the use cases layer can depend on them instead of depending on the
// adapter layer implementations directly.
package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/cars-api/pkg/core/model"
)

// Cars is the interface of a cars repository, keeping the complete
// collection of live car records keyed by their unique IDs.
// Each call is atomic with respect to all other calls on the same
// repository instance, that is, no caller may observe a record with
// fields from two distinct updates and no complete update may be
// dropped silently. Implementations must hand out copies of records,
// so no caller can retain a reference into the repository owned state.
//
// All mutating operations expect their input fields to be validated
// beforehand (see the model.CarFields.Validate method); repositories
// do not re-run validation themselves.
type Cars interface {
	// Create generates a fresh unique ID, records the creation time
	// as both the CreatedAt and UpdatedAt timestamps, inserts a car
	// with the given fields, and returns it. It always succeeds for
	// an already validated fields argument.
	Create(ctx context.Context, fields model.CarFields) (*model.Car, error)

	// Get returns the car with the given id, or a wrapped
	// cerr.NotFound error if no such car is live.
	Get(ctx context.Context, id uuid.UUID) (*model.Car, error)

	// List returns all live cars in their insertion order.
	List(ctx context.Context) ([]*model.Car, error)

	// Replace overwrites all five mutable fields of the id car,
	// preserving its ID and CreatedAt, and refreshing its UpdatedAt.
	// A wrapped cerr.NotFound error is returned if no such car is
	// live; a replace never creates a new record.
	Replace(ctx context.Context, id uuid.UUID, fields model.CarFields) (*model.Car, error)

	// Patch overwrites only those fields of the id car which are
	// present in the patch, preserving its ID and CreatedAt, and
	// refreshing its UpdatedAt even for an empty patch.
	// A wrapped cerr.NotFound error is returned if no such car is
	// live; a patch never creates a new record.
	Patch(ctx context.Context, id uuid.UUID, patch model.CarPatch) (*model.Car, error)

	// Delete removes the id car if it is live. A wrapped
	// cerr.NotFound error is returned if it is absent, no matter if
	// it never existed or was deleted before (idempotent failure).
	Delete(ctx context.Context, id uuid.UUID) error
}
