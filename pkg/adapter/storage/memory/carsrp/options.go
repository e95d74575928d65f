// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsrp

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Option is a functional option for the in-memory cars repository.
type Option func(r *Repo) error

// WithClock option configures a Repo instance in order to obtain the
// current time from the given now function instead of the real UTC
// clock. The reported instants must be monotonically non-decreasing,
// so the repository can keep the creation time of each record at or
// before its last update time. This option may be passed to the New()
// function.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) error {
		if now == nil {
			return errors.New("clock function is nil")
		}
		if r.now != nil {
			return errors.New("clock is already configured")
		}
		r.now = now
		return nil
	}
}

// WithIDGenerator option configures a Repo instance in order to
// generate the car record IDs using the given genID function instead
// of the random UUIDv4 generator. Generated IDs must not collide with
// any live record ID. This option may be passed to the New() function.
func WithIDGenerator(genID func() uuid.UUID) Option {
	return func(r *Repo) error {
		if genID == nil {
			return errors.New("id generator function is nil")
		}
		if r.genID != nil {
			return errors.New("id generator is already configured")
		}
		r.genID = genID
		return nil
	}
}
