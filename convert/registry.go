// Package convert maps the type of a bound variable to the facets needed to set it from
// command-line text: a display name, whether the flag toggles instead of taking a value
// and the parse function itself.
//
// Built-in categories are matched by kind (bool, any signed or unsigned integer width,
// any float width and string kinds) and by exact type ([]byte, []rune, time.Duration,
// time.Time and uuid.UUID). Programs add their own types with Register or RegisterKind.
package convert

import (
	"reflect"
)

// ParseFunc converts text into a value assignable to t
type ParseFunc func(text string, t reflect.Type) (reflect.Value, error)

// Facets describes how values of one type are bound to a flag
type Facets struct {
	// Name is shown in help output after the flag. It may be empty.
	Name string
	// Toggle marks a type set by the flag's presence alone: each occurrence negates
	// the current value and the flag accepts no value.
	Toggle bool
	// Parse converts the flag value. Unused when Toggle is set.
	Parse ParseFunc
}

// KindMatcher reports whether a type belongs to a category
type KindMatcher func(t reflect.Type) bool

type kindEntry struct {
	match  KindMatcher
	facets Facets
}

// Registry is the table of supported value types. It is populated during program setup
// and is not safe for concurrent mutation.
type Registry struct {
	exact      map[reflect.Type]Facets
	kinds      []kindEntry
	permissive bool
}

// NewRegistry returns a registry holding the built-in types
func NewRegistry() *Registry {
	r := &Registry{
		exact: make(map[reflect.Type]Facets),
	}
	r.registerBuiltins()

	return r
}

// SetPermissive switches numeric parsing to the lenient mode in which trailing text after
// the longest valid numeric prefix is ignored. Range checks still apply, and text without
// any valid prefix is still rejected.
func (r *Registry) SetPermissive(permissive bool) {
	r.permissive = permissive
}

// Permissive reports whether lenient numeric parsing is enabled
func (r *Registry) Permissive() bool {
	return r.permissive
}

// RegisterType adds or replaces the facets of an exact type
func (r *Registry) RegisterType(t reflect.Type, facets Facets) {
	r.exact[t] = facets
}

// RegisterKind adds a category of types. Categories registered later take precedence
// over earlier ones; exact types always take precedence over categories.
func (r *Registry) RegisterKind(match KindMatcher, facets Facets) {
	r.kinds = append(r.kinds, kindEntry{match: match, facets: facets})
}

// Register adds an exact type T whose values are produced by parse
func Register[T any](r *Registry, name string, parse func(string) (T, error)) {
	r.RegisterType(TypeOf[T](), Facets{
		Name: name,
		Parse: func(text string, _ reflect.Type) (reflect.Value, error) {
			v, err := parse(text)
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(&v).Elem(), nil
		},
	})
}

// Lookup returns the facets for t
func (r *Registry) Lookup(t reflect.Type) (Facets, bool) {
	if f, ok := r.exact[t]; ok {
		return f, true
	}

	for i := len(r.kinds) - 1; i >= 0; i-- {
		if r.kinds[i].match(t) {
			return r.kinds[i].facets, true
		}
	}

	return Facets{}, false
}

// Supports reports whether values of t can be bound
func (r *Registry) Supports(t reflect.Type) bool {
	_, ok := r.Lookup(t)

	return ok
}

// TypeOf returns the reflect.Type of T, including interface types
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
