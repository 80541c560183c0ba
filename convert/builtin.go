package convert

import (
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/napalu/goflag/errs"
)

// IsBool matches bool and named bool types
func IsBool(t reflect.Type) bool {
	return t.Kind() == reflect.Bool
}

// IsSigned matches signed integers of any width
func IsSigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}

	return false
}

// IsUnsigned matches unsigned integers of any width
func IsUnsigned(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}

	return false
}

// IsFloat matches floating point numbers of any width
func IsFloat(t reflect.Type) bool {
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

// IsString matches string and named string types
func IsString(t reflect.Type) bool {
	return t.Kind() == reflect.String
}

func (r *Registry) registerBuiltins() {
	r.RegisterKind(IsBool, Facets{Toggle: true})
	r.RegisterKind(IsSigned, Facets{Name: "int", Parse: r.parseSigned})
	r.RegisterKind(IsUnsigned, Facets{Name: "unsigned", Parse: r.parseUnsigned})
	r.RegisterKind(IsFloat, Facets{Name: "float", Parse: r.parseFloat})
	r.RegisterKind(IsString, Facets{Name: "string", Parse: parseString})

	Register(r, "string", func(s string) ([]byte, error) { return []byte(s), nil })
	Register(r, "string", func(s string) ([]rune, error) { return []rune(s), nil })
	Register(r, "duration", func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, errs.ErrParseDuration.WithArgs(s)
		}

		return d, nil
	})
	Register(r, "time", func(s string) (time.Time, error) {
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, errs.ErrParseTime.WithArgs(s)
		}

		return t, nil
	})
	Register(r, "uuid", func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, errs.ErrParseUUID.WithArgs(s)
		}

		return id, nil
	})
}

func (r *Registry) parseSigned(text string, t reflect.Type) (reflect.Value, error) {
	n, err := parsePrefix(text, r.permissive, false, func(s string) (int64, error) {
		return strconv.ParseInt(s, 0, 64)
	})
	if err != nil {
		return reflect.Value{}, numericError(err, errs.ErrParseInt, text, t)
	}

	v := reflect.New(t).Elem()
	if v.OverflowInt(n) {
		return reflect.Value{}, errs.ErrParseOverflow.WithArgs(text, t.String())
	}
	v.SetInt(n)

	return v, nil
}

func (r *Registry) parseUnsigned(text string, t reflect.Type) (reflect.Value, error) {
	n, err := parsePrefix(text, r.permissive, false, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 0, 64)
	})
	if err != nil {
		return reflect.Value{}, numericError(err, errs.ErrParseUint, text, t)
	}

	v := reflect.New(t).Elem()
	if v.OverflowUint(n) {
		return reflect.Value{}, errs.ErrParseOverflow.WithArgs(text, t.String())
	}
	v.SetUint(n)

	return v, nil
}

func (r *Registry) parseFloat(text string, t reflect.Type) (reflect.Value, error) {
	f, err := parsePrefix(text, r.permissive, true, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return reflect.Value{}, numericError(err, errs.ErrParseFloat, text, t)
	}

	v := reflect.New(t).Elem()
	if v.OverflowFloat(f) {
		return reflect.Value{}, errs.ErrParseOverflow.WithArgs(text, t.String())
	}
	v.SetFloat(f)

	return v, nil
}

func parseString(text string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	v.SetString(text)

	return v, nil
}
