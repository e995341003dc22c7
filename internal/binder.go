package internal

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// Binder errors.
var (
	ErrBindTarget      = errors.New("bind: target must be a non-nil pointer to a struct")
	ErrBindUnsupported = errors.New("bind: unsupported field type")
)

// maxFormMemory bounds multipart forms kept in memory.
const maxFormMemory = 1 << 20

// bindForm copies form values into exported fields tagged `form:"name"`.
// Untagged fields and the "-" tag are skipped. A checkbox field is true
// when present with any value other than "false", "off" or "0".
func bindForm(r *http.Request, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrBindTarget
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return err
		}
	} else if err := r.ParseForm(); err != nil {
		return err
	}

	elem := rv.Elem()
	typ := elem.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		name, ok := field.Tag.Lookup("form")
		if !ok || name == "-" || !field.IsExported() {
			continue
		}
		name, _, _ = strings.Cut(name, ",")

		values, present := r.Form[name]
		if !present || len(values) == 0 {
			continue
		}
		if err := setField(elem.Field(i), values); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}

func setField(f reflect.Value, values []string) error {
	raw := strings.TrimSpace(values[0])

	switch f.Kind() {
	case reflect.String:
		f.SetString(raw)
	case reflect.Bool:
		switch strings.ToLower(raw) {
		case "false", "off", "0":
			f.SetBool(false)
		default:
			f.SetBool(true)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseFloat(raw, f.Type().Bits())
		if err != nil {
			return err
		}
		f.SetFloat(n)
	case reflect.Slice:
		if f.Type().Elem().Kind() != reflect.String {
			return ErrBindUnsupported
		}
		f.Set(reflect.ValueOf(append([]string(nil), values...)).Convert(f.Type()))
	default:
		return ErrBindUnsupported
	}
	return nil
}
