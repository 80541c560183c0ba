// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goflag parses command-line flags into typed variables.
//
// Flags are given as -name or --name, with the value either inline (-name=value) or in
// the following argument (-name value). Boolean flags take no value and toggle their
// variable each time they are given. Single-character flags may optionally be grouped
// (-abc), arguments which are not flags are collected in order, and - or -- alone ends
// flag processing.
//
// Example:
//
//	var (
//		verbose bool
//		scale   float64
//	)
//	p, err := goflag.NewParserWith(
//		goflag.WithVar(&verbose, "v", "print more"),
//		goflag.WithVar(&scale, "scale", "scaling factor"),
//		goflag.WithAlias("s", "scale"),
//		goflag.WithGrouping(true),
//		goflag.WithDefaultHelp())
//	if err != nil {
//		log.Fatal(err)
//	}
//	files, err := p.ParseArgs(os.Args[1:])
package goflag

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/napalu/goflag/convert"
	"github.com/napalu/goflag/errs"
	"github.com/napalu/goflag/i18n"
	"github.com/napalu/goflag/internal/util"
	"github.com/napalu/goflag/parse"
	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
)

// NewParser convenience initialization method. Use NewParserWith to configure the
// Parser with option functions.
func NewParser() *Parser {
	p := &Parser{
		options:   orderedmap.New(),
		aliases:   orderedmap.New(),
		registry:  convert.NewRegistry(),
		typeNames: true,
		lang:      language.English,
		bundle:    i18n.Default(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		exitFunc:  os.Exit,
	}
	if len(os.Args) > 0 {
		p.program = os.Args[0]
	}

	return p
}

// NewParserWith allows initialization of Parser using option functions. The caller should
// always test for error on return because Parser will be nil when an error occurs during
// initialization.
//
// Configuration example:
//
//	var output string
//	parser, err := NewParserWith(
//		WithVar(&output, "output", "where to write the result"),
//		WithAlias("o", "output"),
//		WithFunc(func(v string) bool { return v != "" }, "tag", "a non-empty tag"),
//		WithErrorDescription("see the manual for details"))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Add registers a flag bound to storage. The type of storage must be known to the
// parser's conversion registry: booleans, integers and floats of any width, text types,
// time.Duration, time.Time, uuid.UUID or a type added with RegisterType.
func Add[T any](p *Parser, storage *T, name, help string) error {
	if err := p.checkRegistration(name); err != nil {
		return err
	}
	if storage == nil {
		return errs.ErrBindNil.WithArgs(name)
	}

	t := convert.TypeOf[T]()
	facets, ok := p.registry.Lookup(t)
	if !ok {
		return errs.ErrUnsupportedType.WithArgs(t.String())
	}
	v, ok := newValue(reflect.ValueOf(storage).Elem(), facets)
	if !ok {
		return errs.ErrUnsupportedType.WithArgs(t.String())
	}

	return p.AddValue(v, name, help)
}

// RegisterType makes T usable with Add on this parser. name is shown in help output and
// fn converts the text given on the command line; an error returned by fn is reported
// as an invalid argument.
func RegisterType[T any](p *Parser, name string, fn func(text string) (T, error)) error {
	if p.parsing {
		return errs.ErrParseInProgress
	}
	if fn == nil {
		return errs.ErrBindNil.WithArgs(convert.TypeOf[T]().String())
	}
	convert.Register(p.registry, name, fn)

	return nil
}

// AddFunc registers a flag whose value is handed to fn. The flag always takes a value;
// fn returning false rejects it.
func (p *Parser) AddFunc(fn ValueFunc, name, help string) error {
	if err := p.checkRegistration(name); err != nil {
		return err
	}
	if fn == nil {
		return errs.ErrBindNil.WithArgs(name)
	}

	return p.AddValue(&funcValue{fn: fn}, name, help)
}

// AddValue registers a flag with a caller-supplied Value
func (p *Parser) AddValue(v Value, name, help string) error {
	if err := p.checkRegistration(name); err != nil {
		return err
	}
	if v == nil {
		return errs.ErrBindNil.WithArgs(name)
	}

	p.options.Set(name, &Option{Name: name, Help: help, Value: v})

	return nil
}

// AddAlias makes alias an alternative name for canonical. canonical does not need to be
// registered yet; it is looked up when the alias is used.
func (p *Parser) AddAlias(alias, canonical string) error {
	if p.parsing {
		return errs.ErrParseInProgress
	}
	if alias == "" {
		return errs.ErrEmptyAlias
	}
	if canonical == "" {
		return errs.ErrEmptyFlag
	}
	if p.isRegistered(alias) {
		return errs.ErrAliasAlreadyExists.WithArgs(alias)
	}

	p.aliases.Set(alias, canonical)

	return nil
}

// Lookup returns the option registered under name. Aliases are only consulted when no
// flag of that name exists.
func (p *Parser) Lookup(name string) (*Option, bool) {
	if v, found := p.options.Get(name); found {
		return v.(*Option), true
	}

	canonical, found := p.aliases.Get(name)
	if !found {
		return nil, false
	}
	if v, found := p.options.Get(canonical.(string)); found {
		return v.(*Option), true
	}

	return nil, false
}

// Options returns the registered options in registration order
func (p *Parser) Options() []*Option {
	options := make([]*Option, 0, p.options.Len())
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value.(*Option))
	}

	return options
}

// AliasFor returns the first alias registered for the flag name
func (p *Parser) AliasFor(name string) (string, bool) {
	for pair := p.aliases.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.(string) == name {
			return pair.Key.(string), true
		}
	}

	return "", false
}

// ProgramName returns the program name used in diagnostics and help
func (p *Parser) ProgramName() string {
	if p.shortProgramName && p.program != "" {
		return filepath.Base(p.program)
	}

	return p.program
}

// Parse processes args, which must not include the program name. Flags are applied in
// order and every other argument is handed to collect. collect may be nil.
//
// The first flag which cannot be applied stops the parse: a diagnostic is written to the
// configured error writer and a *ParseError is returned. When the help flag is given and
// a help handler is configured, the handler runs and ErrHelp is returned.
//
// An = with nothing after it is an empty value: -n= sets n to "" (or fails to convert it)
// without consuming the next argument, and -v= for a flag which takes no value is an
// unexpected value. Give -n value to read the value from the next argument instead.
func (p *Parser) Parse(args []string, collect CollectFunc) error {
	if p.parsing {
		return errs.ErrParseInProgress
	}
	p.parsing = true
	defer func() {
		p.parsing = false
	}()

	if collect == nil {
		collect = func(string) {}
	}

	return p.parse(parse.NewState(args), collect)
}

// ParseArgs is Parse collecting positional arguments into a slice. The arguments
// collected before a failure are returned along with the error.
func (p *Parser) ParseArgs(args []string) ([]string, error) {
	var positional []string
	err := p.Parse(args, func(arg string) {
		positional = append(positional, arg)
	})

	return positional, err
}

// ParseInto is Parse appending positional arguments to dst
func ParseInto[T Text](p *Parser, args []string, dst *[]T) error {
	if dst == nil {
		return errs.ErrBindNil.WithArgs("positional arguments")
	}

	return p.Parse(args, func(arg string) {
		*dst = append(*dst, T(arg))
	})
}

// ParseString splits s like a POSIX shell would and parses the resulting arguments
func (p *Parser) ParseString(s string, collect CollectFunc) error {
	args, err := parse.Split(s)
	if err != nil {
		return err
	}

	return p.Parse(args, collect)
}

// ParseOrExit parses args and exits the process when parsing does not succeed: with
// status 0 after help was shown and status 1 otherwise.
func (p *Parser) ParseOrExit(args []string, collect CollectFunc) {
	err := p.Parse(args, collect)
	if err == nil {
		return
	}

	if errors.Is(err, ErrHelp) {
		p.exitFunc(0)
		return
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintf(util.Stderr(p.stderr), "%s: %s\n", p.ProgramName(), p.translate(err))
	}
	p.exitFunc(1)
}

func (p *Parser) checkRegistration(name string) error {
	if p.parsing {
		return errs.ErrParseInProgress
	}
	if name == "" {
		return errs.ErrEmptyFlag
	}
	if p.isRegistered(name) {
		return errs.ErrFlagAlreadyExists.WithArgs(name)
	}

	return nil
}

func (p *Parser) isRegistered(name string) bool {
	if _, found := p.options.Get(name); found {
		return true
	}
	_, found := p.aliases.Get(name)

	return found
}

func (p *Parser) translate(err error) string {
	var tr i18n.TranslatableError
	if errors.As(err, &tr) {
		return tr.Translate(p.bundle, p.lang)
	}

	return err.Error()
}
