package goflag

import (
	"fmt"

	"github.com/napalu/goflag/errs"
	"github.com/napalu/goflag/i18n"
	"github.com/napalu/goflag/internal/util"
	"github.com/napalu/goflag/types"
	"golang.org/x/text/language"
)

// Error returns the diagnostic in the default language
func (e *ParseError) Error() string {
	return e.message().Error()
}

// Translate returns the diagnostic in lang
func (e *ParseError) Translate(b *i18n.Bundle, lang language.Tag) string {
	return e.message().Translate(b, lang)
}

// Unwrap returns the error matching the outcome (errs.ErrUnknownFlag, ...) and the cause
// of an invalid value
func (e *ParseError) Unwrap() []error {
	var wrapped []error
	if sentinel, ok := outcomeErrors[e.Outcome]; ok {
		wrapped = append(wrapped, sentinel)
	}
	if e.Err != nil {
		wrapped = append(wrapped, e.Err)
	}

	return wrapped
}

// FlagText returns the flag the way it is shown in diagnostics. Members of a group are
// always shown with a single dash.
func (e *ParseError) FlagText() string {
	if e.Group != "" {
		return "-" + e.Flag
	}

	return e.dashes() + e.Flag
}

func (e *ParseError) dashes() string {
	if e.Dashes == "" {
		return "-"
	}

	return e.Dashes
}

func (e *ParseError) message() i18n.TranslatableError {
	flag := e.FlagText()

	switch e.Outcome {
	case types.UnknownFlag:
		return errs.ErrUnknownFlag.WithArgs(flag)
	case types.MissingValue:
		return errs.ErrMissingValue.WithArgs(flag)
	case types.UnexpectedValue:
		return errs.ErrUnexpectedValue.WithArgs(flag)
	case types.InvalidValue:
		return errs.ErrInvalidValue.WithArgs(e.Value, flag)
	}

	return errs.ErrUnknownFlag.WithArgs(flag)
}

// report writes the diagnostic for perr: the message, a suggestion for an unknown flag,
// the whole token of a failed group, the error description and a hint to ask for help.
func (p *Parser) report(perr *ParseError) {
	program := p.ProgramName()
	w := util.Stderr(p.stderr)

	fmt.Fprintf(w, "%s: %s\n", program, perr.Translate(p.bundle, p.lang))
	if perr.Outcome == types.UnknownFlag && perr.Suggestion != "" {
		fmt.Fprintf(w, "%s: %s\n", program, p.bundle.TL(p.lang, errs.MsgDidYouMeanKey, perr.dashes()+perr.Suggestion))
	}
	if perr.Group != "" {
		group := errs.ErrUnknownFlag.WithArgs(perr.dashes() + perr.Group)
		fmt.Fprintf(w, "%s: %s\n", program, group.Translate(p.bundle, p.lang))
	}
	if p.description != "" {
		fmt.Fprintln(w, p.description)
	}
	if p.help != nil {
		fmt.Fprintln(w, p.bundle.TL(p.lang, errs.MsgTryHelpKey, program))
	}
}
