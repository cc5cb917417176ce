// Package http serves the fql query builder over HTTP: routing, the JSON
// response envelope, request validation and the render endpoints.
package http

import (
	"encoding/json"
	"net/http"
	"reflect"

	resTypes "github.com/sllt/fql/pkg/fql/http/response"
)

// NewResponder creates a new Responder instance from the given http.ResponseWriter.
func NewResponder(w http.ResponseWriter, method string) *Responder {
	return &Responder{w: w, method: method}
}

// Responder encapsulates an http.ResponseWriter and is responsible for crafting structured responses.
type Responder struct {
	w      http.ResponseWriter
	method string
}

// Respond writes data, or err, as JSON in the {code, data, message, meta} format.
func (r Responder) Respond(data any, err error) {
	var resp any

	switch v := data.(type) {
	case resTypes.Raw:
		resp = v.Data
	case resTypes.Response:
		v.SetCustomHeaders(r.w)
		resp = buildResponse(v.Data, v.Meta, err)
	default:
		if isNil(data) {
			data = nil
		}

		resp = buildResponse(data, nil, err)
	}

	if r.w.Header().Get("Content-Type") == "" {
		r.w.Header().Set("Content-Type", "application/json")
	}

	jsonData, encodeErr := json.Marshal(resp)
	if encodeErr != nil {
		r.w.WriteHeader(http.StatusInternalServerError)

		_, _ = r.w.Write([]byte(`{"code":-1,"data":null,"message":"failed to encode response as JSON"}` + "\n"))

		return
	}

	r.w.WriteHeader(r.getHTTPStatusCode(data, err))
	_, _ = r.w.Write(jsonData)
	_, _ = r.w.Write([]byte("\n"))
}

func buildResponse(data any, meta map[string]any, err error) response {
	if err == nil {
		return response{Code: 0, Data: data, Message: "ok", Meta: meta}
	}

	return response{Code: getErrorCode(err), Data: nil, Message: err.Error(), Meta: meta}
}

func (r Responder) getHTTPStatusCode(data any, err error) int {
	if err == nil {
		if raw, ok := data.(resTypes.Raw); ok && raw.StatusCode >= http.StatusContinue && raw.StatusCode <= 999 {
			return raw.StatusCode
		}

		if r.method == http.MethodDelete {
			return http.StatusNoContent
		}

		return http.StatusOK
	}

	if e, ok := err.(StatusCodeResponder); ok {
		return e.StatusCode()
	}

	return http.StatusInternalServerError
}

// getErrorCode returns the business error code from the error.
// Priority: CodeResponder.Code() > StatusCodeResponder.StatusCode() > -1
func getErrorCode(err error) int {
	if e, ok := err.(CodeResponder); ok {
		return e.Code()
	}

	if e, ok := err.(StatusCodeResponder); ok {
		return e.StatusCode()
	}

	return -1
}

// response represents the unified HTTP JSON response format.
type response struct {
	Code    int            `json:"code"`
	Data    any            `json:"data"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// StatusCodeResponder allows errors to specify the HTTP status code.
type StatusCodeResponder interface {
	StatusCode() int
}

// CodeResponder allows errors to specify a business error code.
// If not implemented, falls back to StatusCodeResponder.StatusCode(), or -1.
type CodeResponder interface {
	Code() int
}

// isNil checks if the given any value is nil or a nil pointer.
func isNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
