package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sllt/fql/pkg/fql/qb"
)

// ErrorInvalidParam is returned when a request carries a parameter the builder rejects.
type ErrorInvalidParam struct {
	Err error
}

func (e ErrorInvalidParam) Error() string {
	return fmt.Sprintf("invalid parameter: %v", e.Err)
}

func (e ErrorInvalidParam) Unwrap() error { return e.Err }

func (ErrorInvalidParam) StatusCode() int { return http.StatusBadRequest }

// ErrorInvalidBody is returned when the request body is not valid JSON.
type ErrorInvalidBody struct {
	Err error
}

func (e ErrorInvalidBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Err)
}

func (e ErrorInvalidBody) Unwrap() error { return e.Err }

func (ErrorInvalidBody) StatusCode() int { return http.StatusBadRequest }

// ErrorTableNotFound is returned for tables missing from the schema registry.
type ErrorTableNotFound struct {
	Table string
}

func (e ErrorTableNotFound) Error() string {
	return fmt.Sprintf("table %q not found", e.Table)
}

func (ErrorTableNotFound) StatusCode() int { return http.StatusNotFound }

// ErrorTooManyRequests is returned when the rate limiter rejects a request.
type ErrorTooManyRequests struct{}

func (ErrorTooManyRequests) Error() string { return "too many requests" }

func (ErrorTooManyRequests) StatusCode() int { return http.StatusTooManyRequests }

// ErrorRouteNotFound is returned for requests matching no route.
type ErrorRouteNotFound struct{}

func (ErrorRouteNotFound) Error() string { return "route not registered" }

func (ErrorRouteNotFound) StatusCode() int { return http.StatusNotFound }

// mapBuilderError converts builder errors into errors carrying a status code.
func mapBuilderError(table string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, qb.ErrUnknownTable):
		return ErrorTableNotFound{Table: table}
	case errors.Is(err, qb.ErrInvalidArgument):
		return ErrorInvalidParam{Err: err}
	default:
		return err
	}
}
