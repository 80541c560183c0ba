package goflag

import (
	"io"

	"github.com/napalu/goflag/convert"
	"github.com/napalu/goflag/errs"
	"github.com/napalu/goflag/i18n"
	"github.com/napalu/goflag/types"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// HelpKeyword is the flag name which invokes the help handler, if one is configured
const HelpKeyword = "help"

// ValueFunc callback - receives the raw value of a flag registered with AddFunc. Returning
// false rejects the value.
type ValueFunc func(value string) bool

// HelpFunc callback - invoked with the program name when the help flag is given
type HelpFunc func(program string)

// CollectFunc callback - receives positional arguments in the order they were given
type CollectFunc func(arg string)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// Text is the set of element types ParseInto can collect positional arguments into
type Text interface {
	~string | ~[]byte | ~[]rune
}

// Option is a registered flag. Options are created by Add, AddFunc and AddValue and
// are never removed.
type Option struct {
	Name  string
	Help  string
	Value Value
}

// TakesValue reports whether the flag requires a value
func (o *Option) TakesValue() bool {
	return o.Value.TakesValue()
}

// TypeName returns the display name of the flag's value type, possibly empty
func (o *Option) TypeName() string {
	return o.Value.TypeName()
}

// Parser holds the registered options and the parse configuration. It is configured
// first and then used to parse; the two phases must not overlap, and a Parser must not
// be shared between goroutines while it is being configured or used.
type Parser struct {
	options          *orderedmap.OrderedMap
	aliases          *orderedmap.OrderedMap
	registry         *convert.Registry
	grouping         bool
	typeNames        bool
	help             HelpFunc
	description      string
	program          string
	shortProgramName bool
	lang             language.Tag
	bundle           *i18n.Bundle
	stdout           io.Writer
	stderr           io.Writer
	exitFunc         func(code int)
	parsing          bool
}

// ErrHelp is returned by Parse after the help handler ran
var ErrHelp = errs.ErrHelp

// ParseError describes the first flag which could not be resolved or applied. Value
// holds the text given to the flag; an empty inline value (-n=) is reported as such
// rather than as a missing value.
type ParseError struct {
	// Outcome is never types.OK
	Outcome types.Outcome
	// Flag is the flag name as given, without leading dashes
	Flag string
	// Value is the raw value, set for types.InvalidValue
	Value string
	// Dashes holds the dashes the flag was given with ("-" or "--")
	Dashes string
	// Suggestion is the closest registered flag name, for types.UnknownFlag
	Suggestion string
	// Group is set when Flag is the failing member of a grouped short-flag token. The
	// whole token is reported as unrecognized as well.
	Group string
	// Err is the converter or callback failure, for types.InvalidValue
	Err error
}

var outcomeErrors = map[types.Outcome]*i18n.TrError{
	types.UnknownFlag:     errs.ErrUnknownFlag,
	types.MissingValue:    errs.ErrMissingValue,
	types.UnexpectedValue: errs.ErrUnexpectedValue,
	types.InvalidValue:    errs.ErrInvalidValue,
}
