package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

// ParseQuery binds URL query parameters into T using `query` struct tags, then validates it
// Supported field kinds: string, bool, signed and unsigned ints. A `default` tag fills
// missing or empty params before validation
func ParseQuery[T any](r *http.Request) (T, error) {
	var zero, dst T

	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return zero, perr.Internalf("bind: ParseQuery target must be a struct, got %s", rv.Kind())
	}
	q := r.URL.Query()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := queryName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			raw = sf.Tag.Get("default")
		}
		if raw == "" {
			continue
		}
		if !supported(sf.Type.Kind()) {
			return zero, perr.Internalf("bind: unsupported query field kind %s for %q", sf.Type.Kind(), name)
		}
		if err := setField(rv.Field(i), raw); err != nil {
			return zero, perr.WithField(perr.Validationf("%s must be a valid %s", name, sf.Type.Kind()), name)
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// CheckQuery reports query tagged fields of T that ParseQuery cannot bind,
// either for their kind or for a default tag that does not parse
func CheckQuery[T any]() error {
	rv := reflect.New(reflect.TypeFor[T]()).Elem()
	if rv.Kind() != reflect.Struct {
		return perr.Internalf("bind: query target must be a struct, got %s", rv.Kind())
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := queryName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		if !supported(sf.Type.Kind()) {
			return perr.Internalf("bind: %s.%s has unsupported query kind %s", rt.Name(), sf.Name, sf.Type.Kind())
		}
		if def := sf.Tag.Get("default"); def != "" {
			if err := setField(rv.Field(i), def); err != nil {
				return perr.Internalf("bind: %s.%s default %q: %v", rt.Name(), sf.Name, def, err)
			}
		}
	}
	return nil
}

func supported(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// Validate runs struct validation on v outside of request binding
// the first failing field is attached to the returned validation error
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Validationf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

func queryName(sf reflect.StructField) string {
	tag := sf.Tag.Get("query")
	if tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

func setField(v reflect.Value, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	default:
		return perr.Internalf("bind: unsupported query field kind %s", v.Kind())
	}
	return nil
}
