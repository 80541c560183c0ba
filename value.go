package goflag

import (
	"reflect"

	"github.com/napalu/goflag/convert"
	"github.com/napalu/goflag/errs"
)

// Value is the behaviour bound to a flag
type Value interface {
	// Set applies the flag. text is empty for flags which take no value.
	Set(text string) error
	// TakesValue reports whether the flag requires a value
	TakesValue() bool
	// TypeName is shown in help output, it may be empty
	TypeName() string
}

// boundValue converts text with registry facets and stores the result
type boundValue struct {
	target reflect.Value
	facets convert.Facets
}

func (v *boundValue) Set(text string) error {
	converted, err := v.facets.Parse(text, v.target.Type())
	if err != nil {
		return err
	}
	v.target.Set(converted)

	return nil
}

func (v *boundValue) TakesValue() bool {
	return true
}

func (v *boundValue) TypeName() string {
	return v.facets.Name
}

// toggleValue negates a bool each time the flag is given
type toggleValue struct {
	target reflect.Value
	name   string
}

func (v *toggleValue) Set(string) error {
	v.target.SetBool(!v.target.Bool())

	return nil
}

func (v *toggleValue) TakesValue() bool {
	return false
}

func (v *toggleValue) TypeName() string {
	return v.name
}

// funcValue hands the raw value to a caller callback
type funcValue struct {
	fn ValueFunc
}

func (v *funcValue) Set(text string) error {
	if !v.fn(text) {
		return errs.ErrValueRejected.WithArgs(text)
	}

	return nil
}

func (v *funcValue) TakesValue() bool {
	return true
}

func (v *funcValue) TypeName() string {
	return ""
}

func newValue(target reflect.Value, facets convert.Facets) (Value, bool) {
	switch {
	case facets.Toggle && target.Kind() == reflect.Bool:
		return &toggleValue{target: target, name: facets.Name}, true
	case !facets.Toggle && facets.Parse != nil:
		return &boundValue{target: target, facets: facets}, true
	}

	return nil, false
}
