// Copyright (c) 2024-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// vld is the shared validator instance which checks the `validate`
// tags of this package structs. Field names are reported using their
// json tags, so callers observe the same names on the wire and in the
// validation error details.
var vld = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ValidationError enumerates all fields of a candidate car record
// which violate their declared bounds, mapping each json field name
// to one or more human readable reasons. All failing fields are
// reported at once, not just the first one, so a client can fix its
// request in a single round-trip.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface, summarizing the failing
// field names in a deterministic order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(name, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[name] = append(e.Fields[name], reason)
}

// reason converts a single validator.FieldError into a human readable
// description of the violated bound. Unknown tags fall back to the
// library provided error string.
func reason(ferr validator.FieldError) string {
	switch ferr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf(
			"must be at least %s characters long", ferr.Param(),
		)
	case "max":
		return fmt.Sprintf(
			"must be at most %s characters long", ferr.Param(),
		)
	case "gte":
		return fmt.Sprintf(
			"must be greater than or equal to %s", ferr.Param(),
		)
	case "lte":
		return fmt.Sprintf(
			"must be less than or equal to %s", ferr.Param(),
		)
	case "gt":
		return fmt.Sprintf("must be greater than %s", ferr.Param())
	default:
		return ferr.Error()
	}
}

// validateStruct runs the validator on the s struct and converts a
// possible validator.ValidationErrors into a *ValidationError.
// It is a pure function of its input with no side effects.
func validateStruct(s any) error {
	err := vld.Struct(s)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// a non-struct argument; caller passed a wrong type
		panic(err)
	}
	verr := &ValidationError{}
	for _, ferr := range ferrs {
		verr.add(ferr.Field(), reason(ferr))
	}
	return verr
}

// Validate checks all five mutable car fields against their bounds,
// returning nil for an acceptable record or a *ValidationError which
// enumerates every failing field.
func (f CarFields) Validate() error {
	return validateStruct(f)
}

// Validate checks the present fields of the p patch against the same
// bounds as their CarFields counterparts. Absent (nil) fields are
// skipped and an empty patch is valid.
func (p CarPatch) Validate() error {
	return validateStruct(p)
}
