package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	queryDecoder = newQueryDecoder()
	validate     = validator.New(validator.WithRequiredStructEnabled())
)

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// parseQueryParams decodes the query string into values, ignoring empty params.
func parseQueryParams(r *http.Request, values ...interface{}) error {
	params := r.URL.Query()

	for key, val := range params {
		for _, v := range val {
			if v == "" {
				delete(params, key)
			}
		}
	}

	for _, value := range values {
		if err := queryDecoder.Decode(value, params); err != nil {
			return fmt.Errorf("failed to decode query parameters: %w", err)
		}
		if err := validate.Struct(value); err != nil {
			return validationError(err)
		}
	}
	return nil
}

// decodeBody reads a JSON body into v and validates it.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("invalid request: %w", err)
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("invalid field %s: failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("invalid field %s: failed %s", fe.Field(), fe.Tag())
}
