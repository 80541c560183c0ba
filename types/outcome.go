// Package types provides common type definitions for the goflag library.
package types

// Outcome is the result of resolving and applying a single flag token
type Outcome int

const (
	OK              Outcome = iota // OK denotes a flag which was resolved and applied
	UnknownFlag                    // UnknownFlag denotes a flag name which matches no option or alias
	MissingValue                   // MissingValue denotes a value-taking flag at the end of the argument list
	UnexpectedValue                // UnexpectedValue denotes a value given to a flag which takes none
	InvalidValue                   // InvalidValue denotes a value rejected by a converter or callback
)

// String returns the string representation of an Outcome
func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case UnknownFlag:
		return "unknown flag"
	case MissingValue:
		return "missing value"
	case UnexpectedValue:
		return "unexpected value"
	case InvalidValue:
		return "invalid value"
	}

	return "unknown"
}
