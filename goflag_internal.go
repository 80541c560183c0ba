package goflag

import (
	"strings"

	"github.com/napalu/goflag/parse"
	"github.com/napalu/goflag/similarity"
	"github.com/napalu/goflag/types"
)

func (p *Parser) parse(state parse.State, collect CollectFunc) error {
	for state.Advance() {
		arg := state.CurrentArg()
		if !isFlag(arg) {
			collect(arg)
			continue
		}
		if isTerminator(arg) {
			state.Drain(collect)
			break
		}

		dashes, rest := splitDashes(arg)
		if rest == HelpKeyword && p.help != nil {
			p.help(p.ProgramName())
			return ErrHelp
		}

		name, value, hasValue := strings.Cut(rest, "=")
		pending := state.Len()
		perr := p.resolveAndApply(name, value, hasValue, state)
		if perr != nil && p.retryAsGroup(name, perr, state.Len() != pending) {
			gerr := p.resolveGroup(name, value, hasValue, state)
			// an invalid group keeps the diagnostic of the known flag
			if gerr == nil || gerr.Group != "" || perr.Outcome == types.UnknownFlag {
				perr = gerr
			}
		}
		if perr != nil {
			perr.Dashes = dashes
			if perr.Outcome == types.UnknownFlag {
				perr.Suggestion, _ = similarity.Closest(perr.Flag, p.names(), similarity.DefaultThreshold)
			}
			p.report(perr)

			return perr
		}
	}

	return nil
}

// resolveAndApply looks up name and applies it. A flag which takes a value but was given
// none consumes the next argument.
func (p *Parser) resolveAndApply(name, value string, hasValue bool, state parse.State) *ParseError {
	opt, found := p.Lookup(name)
	if !found {
		return &ParseError{Outcome: types.UnknownFlag, Flag: name}
	}

	return p.apply(opt, name, value, hasValue, state)
}

// retryAsGroup reports whether a failed direct resolution of name is tried again as a
// group. A flag which already consumed the next argument is never retried, and a single
// character is its own group.
func (p *Parser) retryAsGroup(name string, perr *ParseError, consumed bool) bool {
	if !p.grouping {
		return false
	}
	if perr.Outcome == types.UnknownFlag {
		return true
	}

	return !consumed && len(splitCodepoints(name)) > 1
}

func (p *Parser) apply(opt *Option, name, value string, hasValue bool, state parse.State) *ParseError {
	if !opt.TakesValue() {
		if hasValue {
			return &ParseError{Outcome: types.UnexpectedValue, Flag: name}
		}
		if err := opt.Value.Set(""); err != nil {
			return &ParseError{Outcome: types.InvalidValue, Flag: name, Err: err}
		}

		return nil
	}

	if !hasValue {
		next, ok := state.Take()
		if !ok {
			return &ParseError{Outcome: types.MissingValue, Flag: name}
		}
		value = next
	}

	if err := opt.Value.Set(value); err != nil {
		return &ParseError{Outcome: types.InvalidValue, Flag: name, Value: value, Err: err}
	}

	return nil
}

func (p *Parser) names() []string {
	names := make([]string, 0, p.options.Len())
	for pair := p.options.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}

func isTerminator(arg string) bool {
	return arg == "-" || arg == "--"
}

// splitDashes strips one or two leading dashes from a flag argument
func splitDashes(arg string) (dashes, rest string) {
	if strings.HasPrefix(arg, "--") {
		return "--", arg[2:]
	}

	return "-", arg[1:]
}
