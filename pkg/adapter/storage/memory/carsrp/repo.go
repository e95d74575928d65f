// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrp provides the in-memory implementation of the cars
// repository. The collection of live car records is volatile and
// belongs to the owning process exclusively, hence, all records are
// lost when the process terminates.
package carsrp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/momeni/cars-api/pkg/core/cerr"
	"github.com/momeni/cars-api/pkg/core/model"
	"github.com/momeni/cars-api/pkg/core/repo"
)

// Repo is an in-memory cars repository. It maintains the mapping of
// unique car IDs to their records, guarded by a single mutex, so each
// repository call runs as one indivisible step with respect to all
// other calls on the same instance. The insertion order of records is
// tracked separately, so List can report records in a stable order.
//
// The current time and fresh ID providers are injected as explicit
// collaborators (with the real UTC clock and the random UUIDv4
// generator as defaults), so tests may supply deterministic stand-ins
// instead of relying on the ambient system state.
type Repo struct {
	mutex sync.Mutex
	cars  map[uuid.UUID]model.Car
	order []uuid.UUID

	now   func() time.Time
	genID func() uuid.UUID
}

var _ repo.Cars = (*Repo)(nil)

// New instantiates an empty in-memory cars repository.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(opts ...Option) (*Repo, error) {
	r := &Repo{
		cars: make(map[uuid.UUID]model.Car),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if r.now == nil {
		r.now = func() time.Time {
			return time.Now().UTC()
		}
	}
	if r.genID == nil {
		r.genID = uuid.New
	}
	return r, nil
}

// Create inserts a new car record with the given (already validated)
// fields, generating a fresh unique ID and setting both timestamps to
// the current time, and returns a copy of the inserted record.
// The 122 random bits of a UUIDv4 make a collision with a live record
// effectively impossible; observing one indicates a broken generator,
// which is an internal invariant violation and causes a panic instead
// of being reported as an error.
func (r *Repo) Create(
	_ context.Context, fields model.CarFields,
) (*model.Car, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	cid := r.genID()
	if _, ok := r.cars[cid]; ok {
		panic(fmt.Sprintf("duplicate generated car id: %s", cid))
	}
	now := r.now()
	car := model.Car{
		ID:        cid,
		CarFields: fields,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.cars[cid] = car
	r.order = append(r.order, cid)
	return &car, nil
}

// Get returns a copy of the cid car record, if it is live.
func (r *Repo) Get(
	_ context.Context, cid uuid.UUID,
) (*model.Car, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	car, ok := r.cars[cid]
	if !ok {
		return nil, notFound(cid)
	}
	return &car, nil
}

// List returns copies of all live car records in insertion order.
// The order is stable across calls, but not across process restarts
// since the collection itself is volatile.
func (r *Repo) List(_ context.Context) ([]*model.Car, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	cars := make([]*model.Car, len(r.order))
	for i, cid := range r.order {
		car := r.cars[cid]
		cars[i] = &car
	}
	return cars, nil
}

// Replace overwrites all mutable fields of the cid car with the given
// (already validated) fields, preserving its ID and CreatedAt and
// refreshing its UpdatedAt, and returns a copy of the updated record.
func (r *Repo) Replace(
	_ context.Context, cid uuid.UUID, fields model.CarFields,
) (*model.Car, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	car, ok := r.cars[cid]
	if !ok {
		return nil, notFound(cid)
	}
	car.CarFields = fields
	car.UpdatedAt = r.now()
	r.cars[cid] = car
	return &car, nil
}

// Patch overwrites only the present fields of the p patch on the cid
// car, preserving its ID and CreatedAt and refreshing its UpdatedAt
// (even for an all-absent patch), and returns a copy of the updated
// record.
func (r *Repo) Patch(
	_ context.Context, cid uuid.UUID, p model.CarPatch,
) (*model.Car, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	car, ok := r.cars[cid]
	if !ok {
		return nil, notFound(cid)
	}
	car.CarFields = p.Apply(car.CarFields)
	car.UpdatedAt = r.now()
	r.cars[cid] = car
	return &car, nil
}

// Delete removes the cid car record, if it is live. Repeating a
// deletion fails with the same not-found error as deleting a record
// which never existed.
func (r *Repo) Delete(_ context.Context, cid uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.cars[cid]; !ok {
		return notFound(cid)
	}
	delete(r.cars, cid)
	for i, id := range r.order {
		if id == cid {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of live car records.
func (r *Repo) Len() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.cars)
}

func notFound(cid uuid.UUID) error {
	return cerr.NotFound(fmt.Errorf("no car with id %s", cid))
}
