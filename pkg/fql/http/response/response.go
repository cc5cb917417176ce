// Package response holds the payload types handlers may return to control
// the shape of the JSON envelope.
package response

import (
	"net/http"
)

// Response carries data together with envelope metadata and extra headers.
type Response struct {
	Data    any               `json:"data"`
	Meta    map[string]any    `json:"meta,omitempty"`
	Headers map[string]string `json:"-"`
}

func (resp Response) SetCustomHeaders(w http.ResponseWriter) {
	for key, value := range resp.Headers {
		w.Header().Set(key, value)
	}
}

// Raw is written as is, without the envelope.
type Raw struct {
	Data any

	// StatusCode overrides the default success status when it is a valid HTTP status.
	StatusCode int
}
