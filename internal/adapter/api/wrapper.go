// Package api exposes the tools as an HTTP JSON API.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang-devtools/internal/pkg/logging"
)

// Response describes the outcome of a handler
type Response interface {
	Status() int
	Err() error

	// header getter
	Header() http.Header
	// header setter
	WithHeader(k, v string) Response
}

// Handler returns the object to encode and the response status
type Handler func(r *http.Request, w http.ResponseWriter) (interface{}, Response)

// errorBody is the JSON document written for failed requests
type errorBody struct {
	Error string `json:"err"`
}

// wrapFunc encodes the handler result as JSON
func wrapFunc(a Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		}()

		object, result := a(r, w)

		w.Header().Set("Content-Type", "application/json")

		if result == nil {
			w.WriteHeader(http.StatusOK)
		} else {
			h := result.Header()
			for k := range h {
				for _, v := range h.Values(k) {
					w.Header().Add(k, v)
				}
			}

			w.WriteHeader(result.Status())
			if err := result.Err(); err != nil {
				object = errorBody{Error: err.Error()}
			}
		}

		if err := json.NewEncoder(w).Encode(object); err != nil {
			logging.WithComponent("api").WithError(err).Error("failed to encode return object")
		}
	}
}

type genericResponse struct {
	status int
	err    error
	header http.Header
}

func (r genericResponse) Status() int {
	return r.status
}

func (r genericResponse) Err() error {
	return r.err
}

func (r genericResponse) Header() http.Header {
	if r.header == nil {
		r.header = http.Header{}
	}
	return r.header
}

func (r genericResponse) WithHeader(k, v string) Response {
	if r.header == nil {
		r.header = http.Header{}
	}

	r.header.Add(k, v)
	return r
}

// ok returns a 200 response
func ok() Response {
	return genericResponse{status: http.StatusOK}
}

// genError generic error response
func genError(err error, code int) Response {
	if err == nil {
		err = fmt.Errorf("no message")
	}

	return genericResponse{status: code, err: err}
}

func badRequest(err error) Response {
	return genError(err, http.StatusBadRequest)
}

func internalServerError(err error) Response {
	return genError(err, http.StatusInternalServerError)
}

func badGateway(err error) Response {
	return genError(err, http.StatusBadGateway)
}

func notFound(err error) Response {
	return genError(err, http.StatusNotFound)
}
