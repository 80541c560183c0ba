package goflag

import (
	"unicode/utf8"

	"github.com/napalu/goflag/parse"
	"github.com/napalu/goflag/types"
)

// resolveGroup treats token as a run of single-character flags, as in -abc for -a -b -c.
// The group is valid when every character is a known flag and only the last one takes a
// value. Nothing is applied unless the group is valid and its value, if needed, is
// available.
func (p *Parser) resolveGroup(token, value string, hasValue bool, state parse.State) *ParseError {
	members := splitCodepoints(token)
	if len(members) == 0 {
		return &ParseError{Outcome: types.UnknownFlag, Flag: token}
	}

	last := len(members) - 1
	opts := make([]*Option, len(members))
	for i, member := range members {
		opt, found := p.Lookup(member)
		if !found || (i < last && opt.TakesValue()) {
			return &ParseError{Outcome: types.UnknownFlag, Flag: token}
		}
		opts[i] = opt
	}

	if opts[last].TakesValue() && !hasValue {
		next, ok := state.Take()
		if !ok {
			return &ParseError{Outcome: types.MissingValue, Flag: members[last], Group: token}
		}
		value, hasValue = next, true
	}

	for i, opt := range opts[:last] {
		if err := opt.Value.Set(""); err != nil {
			return &ParseError{Outcome: types.InvalidValue, Flag: members[i], Group: token, Err: err}
		}
	}

	if perr := p.apply(opts[last], members[last], value, hasValue, state); perr != nil {
		perr.Group = token
		return perr
	}

	return nil
}

// splitCodepoints splits s into UTF-8 sequences: a lead byte followed by its continuation
// bytes. Invalid sequences are kept as they are.
func splitCodepoints(s string) []string {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || utf8.RuneStart(s[i]) {
			out = append(out, s[start:i])
			start = i
		}
	}

	return out
}
