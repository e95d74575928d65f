// Copyright (c) 2023-2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/cars-api/pkg/adapter/config"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin"
	"github.com/momeni/cars-api/pkg/adapter/restful/gin/routes"
	"github.com/stretchr/testify/suite"
)

// carResp mirrors the serialized form of a car record.
type carResp struct {
	ID        string    `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Color     string    `json:"color"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type IntegrationGinTestSuite struct {
	suite.Suite

	Gin *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	suite.Run(t, &IntegrationGinTestSuite{})
}

// SetupTest builds a fresh engine with an empty in-memory repository,
// so test cases may not observe each other records.
func (igts *IntegrationGinTestSuite) SetupTest() {
	c := &config.Config{}
	err := c.ValidateAndNormalize()
	igts.Require().NoError(err, "cannot normalize default configs")
	disabled := false
	c.Gin.Logger = &disabled

	igts.Gin = c.Gin.NewEngine()
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Gin, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func (igts *IntegrationGinTestSuite) serve(
	method, path string, body any,
) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		igts.Require().NoError(err, "cannot marshal request body")
		r = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, r)
	igts.Require().NoError(err, "cannot create %s request", method)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	return w
}

func (igts *IntegrationGinTestSuite) decode(
	w *httptest.ResponseRecorder, res any,
) {
	err := json.Unmarshal(w.Body.Bytes(), res)
	igts.Require().NoError(err, "cannot decode response: %s", w.Body)
}

func validBody() map[string]any {
	return map[string]any{
		"make":  "Toyota",
		"model": "Camry",
		"year":  2023,
		"color": "Blue",
		"price": 25000.0,
	}
}

func (igts *IntegrationGinTestSuite) createCar() carResp {
	w := igts.serve(http.MethodPost, "/cars", validBody())
	igts.Require().Equal(http.StatusCreated, w.Code, "%s", w.Body)
	car := carResp{}
	igts.decode(w, &car)
	return car
}

func (igts *IntegrationGinTestSuite) TestCarLifecycle() {
	car := igts.createCar()
	_, err := uuid.Parse(car.ID)
	igts.NoError(err, "id must be a UUID")
	igts.Equal("Toyota", car.Make)
	igts.Equal(car.CreatedAt, car.UpdatedAt)

	w := igts.serve(http.MethodGet, "/cars/"+car.ID, nil)
	igts.Equal(http.StatusOK, w.Code)
	got := carResp{}
	igts.decode(w, &got)
	igts.Equal(car, got)

	w = igts.serve(http.MethodGet, "/cars", nil)
	igts.Equal(http.StatusOK, w.Code)
	var cars []carResp
	igts.decode(w, &cars)
	igts.Require().Len(cars, 1)
	igts.Equal(car, cars[0])

	w = igts.serve(
		http.MethodPatch, "/cars/"+car.ID,
		map[string]any{"color": "Red"},
	)
	igts.Equal(http.StatusOK, w.Code, "%s", w.Body)
	patched := carResp{}
	igts.decode(w, &patched)
	igts.Equal("Red", patched.Color)
	igts.Equal(car.Make, patched.Make)
	igts.Equal(car.Model, patched.Model)
	igts.Equal(car.Year, patched.Year)
	igts.Equal(car.Price, patched.Price)
	igts.Equal(car.CreatedAt, patched.CreatedAt)
	igts.False(patched.UpdatedAt.Before(car.UpdatedAt))

	w = igts.serve(http.MethodDelete, "/cars/"+car.ID, nil)
	igts.Equal(http.StatusNoContent, w.Code)
	igts.Empty(w.Body.String())

	w = igts.serve(http.MethodGet, "/cars/"+car.ID, nil)
	igts.Equal(http.StatusNotFound, w.Code)
	res := struct {
		Detail string `json:"detail"`
	}{}
	igts.decode(w, &res)
	igts.Contains(res.Detail, car.ID)

	w = igts.serve(http.MethodDelete, "/cars/"+car.ID, nil)
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestListEmpty() {
	w := igts.serve(http.MethodGet, "/cars", nil)
	igts.Equal(http.StatusOK, w.Code)
	igts.Equal("[]", strings.TrimSpace(w.Body.String()))
}

func (igts *IntegrationGinTestSuite) TestCreateValidationFailure() {
	for _, tc := range []struct {
		name   string
		mutate func(b map[string]any)
		fields []string
	}{
		{
			name: "year below range",
			mutate: func(b map[string]any) {
				b["year"] = 1899
			},
			fields: []string{"year"},
		},
		{
			name: "year above range",
			mutate: func(b map[string]any) {
				b["year"] = 2031
			},
			fields: []string{"year"},
		},
		{
			name: "zero price",
			mutate: func(b map[string]any) {
				b["price"] = 0
			},
			fields: []string{"price"},
		},
		{
			name: "negative price",
			mutate: func(b map[string]any) {
				b["price"] = -5
			},
			fields: []string{"price"},
		},
		{
			name: "empty make",
			mutate: func(b map[string]any) {
				b["make"] = ""
			},
			fields: []string{"make"},
		},
		{
			name: "too long make",
			mutate: func(b map[string]any) {
				b["make"] = strings.Repeat("x", 51)
			},
			fields: []string{"make"},
		},
		{
			name: "too long color",
			mutate: func(b map[string]any) {
				b["color"] = strings.Repeat("x", 31)
			},
			fields: []string{"color"},
		},
		{
			name: "multiple invalid fields",
			mutate: func(b map[string]any) {
				b["make"] = ""
				b["year"] = 1899
				b["price"] = 0
			},
			fields: []string{"make", "year", "price"},
		},
	} {
		igts.Run(tc.name, func() {
			body := validBody()
			tc.mutate(body)
			w := igts.serve(http.MethodPost, "/cars", body)
			igts.Equal(
				http.StatusUnprocessableEntity, w.Code,
				"%s", w.Body,
			)
			errs := map[string][]string{}
			igts.decode(w, &errs)
			igts.Len(errs, len(tc.fields))
			for _, name := range tc.fields {
				igts.Contains(errs, name)
				igts.NotEmpty(errs[name])
			}
		})
	}
}

func (igts *IntegrationGinTestSuite) TestCreateBoundaryValues() {
	for _, tc := range []struct {
		name   string
		mutate func(b map[string]any)
	}{
		{
			name: "year at lower bound",
			mutate: func(b map[string]any) {
				b["year"] = 1900
			},
		},
		{
			name: "year at upper bound",
			mutate: func(b map[string]any) {
				b["year"] = 2030
			},
		},
		{
			name: "small positive price",
			mutate: func(b map[string]any) {
				b["price"] = 0.01
			},
		},
	} {
		igts.Run(tc.name, func() {
			body := validBody()
			tc.mutate(body)
			w := igts.serve(http.MethodPost, "/cars", body)
			igts.Equal(http.StatusCreated, w.Code, "%s", w.Body)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestCreateWrongFieldType() {
	body := validBody()
	body["year"] = "not-a-number"
	w := igts.serve(http.MethodPost, "/cars", body)
	igts.Equal(http.StatusUnprocessableEntity, w.Code, "%s", w.Body)
	errs := map[string][]string{}
	igts.decode(w, &errs)
	igts.Require().Contains(errs, "year")
	igts.Contains(errs["year"][0], "int")
}

func (igts *IntegrationGinTestSuite) TestCreateUnknownField() {
	body := validBody()
	body["colour"] = "Blue"
	w := igts.serve(http.MethodPost, "/cars", body)
	igts.Equal(http.StatusBadRequest, w.Code, "%s", w.Body)
	res := struct {
		Detail string `json:"detail"`
	}{}
	igts.decode(w, &res)
	igts.Contains(res.Detail, "colour")
}

func (igts *IntegrationGinTestSuite) TestCreateMalformedBody() {
	req, err := http.NewRequest(
		http.MethodPost, "/cars", strings.NewReader("{broken"),
	)
	igts.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	igts.Equal(http.StatusBadRequest, w.Code)
}

func (igts *IntegrationGinTestSuite) TestReplace() {
	car := igts.createCar()

	body := map[string]any{
		"make":  "Honda",
		"model": "Civic",
		"year":  2020,
		"color": "Black",
		"price": 18000.0,
	}
	w := igts.serve(http.MethodPut, "/cars/"+car.ID, body)
	igts.Equal(http.StatusOK, w.Code, "%s", w.Body)
	updated := carResp{}
	igts.decode(w, &updated)
	igts.Equal(car.ID, updated.ID)
	igts.Equal("Honda", updated.Make)
	igts.Equal(car.CreatedAt, updated.CreatedAt)
	igts.False(updated.UpdatedAt.Before(car.UpdatedAt))
}

func (igts *IntegrationGinTestSuite) TestReplaceRequiresAllFields() {
	car := igts.createCar()

	w := igts.serve(
		http.MethodPut, "/cars/"+car.ID,
		map[string]any{"make": "Honda"},
	)
	igts.Equal(http.StatusUnprocessableEntity, w.Code, "%s", w.Body)
	errs := map[string][]string{}
	igts.decode(w, &errs)
	for _, name := range []string{"model", "year", "color", "price"} {
		igts.Contains(errs, name)
	}
}

func (igts *IntegrationGinTestSuite) TestReplaceMissing() {
	w := igts.serve(
		http.MethodPut, "/cars/"+uuid.New().String(), validBody(),
	)
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestPatchEmptyBody() {
	car := igts.createCar()

	w := igts.serve(
		http.MethodPatch, "/cars/"+car.ID, map[string]any{},
	)
	igts.Equal(http.StatusOK, w.Code, "%s", w.Body)
	updated := carResp{}
	igts.decode(w, &updated)
	igts.Equal(car.Make, updated.Make)
	igts.Equal(car.Color, updated.Color)
	igts.Equal(car.CreatedAt, updated.CreatedAt)
	igts.False(updated.UpdatedAt.Before(car.UpdatedAt))
}

func (igts *IntegrationGinTestSuite) TestPatchValidationFailure() {
	car := igts.createCar()

	w := igts.serve(
		http.MethodPatch, "/cars/"+car.ID,
		map[string]any{"price": -1},
	)
	igts.Equal(http.StatusUnprocessableEntity, w.Code, "%s", w.Body)
	errs := map[string][]string{}
	igts.decode(w, &errs)
	igts.Contains(errs, "price")
}

func (igts *IntegrationGinTestSuite) TestPatchMissing() {
	w := igts.serve(
		http.MethodPatch, "/cars/"+uuid.New().String(),
		map[string]any{"color": "Red"},
	)
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestMalformedID() {
	for _, method := range []string{
		http.MethodGet, http.MethodDelete,
	} {
		w := igts.serve(method, "/cars/not-a-uuid", nil)
		igts.Equal(http.StatusNotFound, w.Code, "method %s", method)
	}
}

func (igts *IntegrationGinTestSuite) TestHealth() {
	w := igts.serve(http.MethodGet, "/", nil)
	igts.Equal(http.StatusOK, w.Code)
	root := struct {
		Message string `json:"message"`
		Version string `json:"version"`
	}{}
	igts.decode(w, &root)
	igts.Equal(config.DefaultAppName, root.Message)
	igts.Equal(config.DefaultAppVersion, root.Version)

	w = igts.serve(http.MethodGet, "/health", nil)
	igts.Equal(http.StatusOK, w.Code)
	health := struct {
		Status    string `json:"status"`
		Service   string `json:"service"`
		Timestamp string `json:"timestamp"`
	}{}
	igts.decode(w, &health)
	igts.Equal("healthy", health.Status)
	igts.Equal(config.DefaultAppName, health.Service)
	_, err := time.Parse(time.RFC3339, health.Timestamp)
	igts.NoError(err, "timestamp must be RFC 3339")
}

func (igts *IntegrationGinTestSuite) TestMetrics() {
	igts.createCar()

	w := igts.serve(http.MethodGet, "/metrics", nil)
	igts.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	igts.Contains(body, "cars_api_requests_total")
	igts.Contains(body, "cars_api_cars_live 1")
}
