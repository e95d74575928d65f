// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by validation
// libraries) since adding more tags does not complicate definition of
// a struct, but can prevent unnecessary structs duplication.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Car models a car record which is kept in an in-memory repository.
// The ID is generated by the repository at creation time and is
// immutable thereafter. CreatedAt is set once at creation, while
// UpdatedAt is refreshed by every successful complete or partial
// update, hence, CreatedAt <= UpdatedAt holds at all times.
// Both timestamps are kept in UTC, so their JSON serialization uses
// the RFC 3339 format with the Z designator.
type Car struct {
	ID uuid.UUID `json:"id"`
	CarFields
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarFields contains the five mutable attributes of a car, that is,
// all attributes beyond the ID and timestamps which are maintained by
// the repository itself. It is used as the input of the creation and
// complete replacement operations which require all fields to be
// present and valid.
type CarFields struct {
	Make  string  `json:"make" validate:"required,min=1,max=50"`
	Model string  `json:"model" validate:"required,min=1,max=50"`
	Year  int     `json:"year" validate:"gte=1900,lte=2030"`
	Color string  `json:"color" validate:"required,min=1,max=30"`
	Price float64 `json:"price" validate:"gt=0"`
}

// CarPatch describes a partial update of a car. Each field is either
// present, pointing at its new value, or nil in order to keep the old
// value of that field untouched. There is no clearing semantics, so
// an absent field and a nil field are the same. An all-nil patch is
// legal and updates no field (the repository still refreshes the
// UpdatedAt timestamp for it).
// A distinct struct (instead of reusing CarFields with sentinel
// values) keeps the absent and zero-valued fields distinguishable.
type CarPatch struct {
	Make  *string  `json:"make" validate:"omitnil,min=1,max=50"`
	Model *string  `json:"model" validate:"omitnil,min=1,max=50"`
	Year  *int     `json:"year" validate:"omitnil,gte=1900,lte=2030"`
	Color *string  `json:"color" validate:"omitnil,min=1,max=30"`
	Price *float64 `json:"price" validate:"omitnil,gt=0"`
}

// Apply overwrites those fields of the f CarFields which are present
// in the p patch, leaving the rest untouched, and returns the result.
func (p CarPatch) Apply(f CarFields) CarFields {
	if p.Make != nil {
		f.Make = *p.Make
	}
	if p.Model != nil {
		f.Model = *p.Model
	}
	if p.Year != nil {
		f.Year = *p.Year
	}
	if p.Color != nil {
		f.Color = *p.Color
	}
	if p.Price != nil {
		f.Price = *p.Price
	}
	return f
}
