// Package serdser provides the common (de)serialization helpers for
// the REST resources, converting the binding and use case errors into
// self-describing JSON responses. Validation failures are reported as
// a map of json field names to reason lists with the 422 status code,
// so a client can distinguish malformed input from unknown resources
// without inspecting the status code alone.
package serdser

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/cars-api/pkg/core/cerr"
	"github.com/momeni/cars-api/pkg/core/model"
)

// Bind deserializes the request body of the c context into the req
// object using the b binding and reports whether it succeeded.
// On failure, an error response is serialized too: a type mismatch
// for a known field is a validation failure of that field (422),
// while a malformed body, such as broken JSON or an unknown field,
// is a bad request (400).
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	var typeErr *json.UnmarshalTypeError
	switch err := c.ShouldBindWith(req, b); {
	case err == nil:
		return true
	case errors.As(err, &typeErr):
		var errs map[string][]string
		AddErr(
			&errs, typeErr.Field,
			fmt.Sprintf("must be of %s type", typeErr.Type),
		)
		c.JSON(http.StatusUnprocessableEntity, errs)
	default:
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var errs map[string][]string
			for _, ferr := range verrs {
				AddErr(&errs, ferr.Field(), ferr.Error())
			}
			c.JSON(http.StatusUnprocessableEntity, errs)
			break
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

// AddErr appends the given msgs reasons for the name field to the
// errs map, allocating the map itself if it is nil.
func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

// SerErr serializes the err error as a JSON response. Errors wrapped
// by the cerr package select their own status code and a wrapped
// model.ValidationError is rendered as the per-field reasons map.
// Unrecognized errors are serialized as internal server errors.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if !errors.As(err, &ce) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
		return
	}
	var verr *model.ValidationError
	if errors.As(ce.Err, &verr) {
		c.JSON(ce.HTTPStatusCode, verr.Fields)
		return
	}
	c.JSON(ce.HTTPStatusCode, gin.H{
		"detail": ce.Err.Error(),
	})
}
