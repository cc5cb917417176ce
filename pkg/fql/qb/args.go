package qb

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
)

// numericPattern accepts decimal integers and floats with an optional exponent,
// allowing surrounding whitespace.
var numericPattern = regexp.MustCompile(`^\s*[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?\s*$`)

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}

// toStrings accepts a string or a slice/array whose elements are all strings.
func toStrings(v any) ([]string, bool) {
	rv := reflect.ValueOf(v)

	//nolint:exhaustive // only strings and sequences are accepted.
	switch rv.Kind() {
	case reflect.String:
		return []string{rv.String()}, true
	case reflect.Slice, reflect.Array:
		out := make([]string, 0, rv.Len())

		for i := 0; i < rv.Len(); i++ {
			e := rv.Index(i)
			if e.Kind() == reflect.Interface {
				e = e.Elem()
			}

			if e.Kind() != reflect.String {
				return nil, false
			}

			out = append(out, e.String())
		}

		return out, true
	default:
		return nil, false
	}
}

// formatNumeric renders v the way it appears in a LIMIT clause. Numeric
// strings are kept verbatim.
func formatNumeric(v any) (string, bool) {
	rv := reflect.ValueOf(v)

	//nolint:exhaustive // only numeric kinds are accepted.
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}

		return strconv.FormatFloat(f, 'f', -1, rv.Type().Bits()), true
	case reflect.String:
		s := rv.String()
		if !numericPattern.MatchString(s) {
			return "", false
		}

		return s, true
	default:
		return "", false
	}
}
