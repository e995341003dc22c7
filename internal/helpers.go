package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingValue is returned by FormValue for an absent or blank field.
var ErrMissingValue = errors.New("missing value")

// Scalar lists the types request values can be parsed into.
type Scalar interface {
	string | int | int64 | float64 | bool
}

func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}

// Param is the URL parameter name parsed as T, or the zero value.
func Param[T Scalar](c Context, name string) T {
	v, _ := parseScalar[T](c.Param(name))
	return v
}

// Query is the query parameter name parsed as T, or the zero value.
func Query[T Scalar](c Context, name string) T {
	v, _ := parseScalar[T](c.Query(name))
	return v
}

// QueryDefault is like Query but falls back to defaultValue when the
// parameter is empty or malformed.
func QueryDefault[T Scalar](c Context, name string, defaultValue T) T {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// FormValue parses the trimmed form field name as T. Blank fields are
// ErrMissingValue; malformed ones wrap the strconv error.
func FormValue[T Scalar](c Context, name string) (T, error) {
	raw := strings.TrimSpace(c.Form(name))
	if raw == "" {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrMissingValue)
	}
	v, err := parseScalar[T](raw)
	if err != nil {
		return v, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func parseScalar[T Scalar](raw string) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return out, err
		}
		*p = v
	case *int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return out, err
		}
		*p = v
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, err
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return out, err
		}
		*p = v
	}
	return out, nil
}
