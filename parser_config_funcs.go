package goflag

import (
	"io"

	"golang.org/x/text/language"
)

// WithVar is a wrapper for Add which is used to define a flag bound to storage
func WithVar[T any](storage *T, name, help string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = Add(p, storage, name, help)
	}
}

// WithFunc is a wrapper for AddFunc
func WithFunc(fn ValueFunc, name, help string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddFunc(fn, name, help)
	}
}

// WithValue is a wrapper for AddValue
func WithValue(v Value, name, help string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddValue(v, name, help)
	}
}

// WithAlias is a wrapper for AddAlias
func WithAlias(alias, canonical string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddAlias(alias, canonical)
	}
}

// WithType is a wrapper for RegisterType. It must precede the flags using T.
func WithType[T any](name string, fn func(text string) (T, error)) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = RegisterType(p, name, fn)
	}
}

// WithGrouping enables grouped single-character flags (-abc for -a -b -c)
func WithGrouping(grouping bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetGrouping(grouping)
	}
}

// WithTypeNames shows or hides value type names in help output
func WithTypeNames(show bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetTypeNames(show)
	}
}

// WithHelp sets the function run when the help flag is given
func WithHelp(help HelpFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetHelp(help)
	}
}

// WithDefaultHelp prints the default usage to the parser's output writer when the help
// flag is given
func WithDefaultHelp() ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetHelp(p.DefaultUsage)
	}
}

// WithErrorDescription sets a text printed after every diagnostic
func WithErrorDescription(description string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetErrorDescription(description)
	}
}

// WithProgramName sets the program name used in diagnostics and help (defaults to os.Args[0])
func WithProgramName(program string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetProgramName(program)
	}
}

// WithShortProgramName displays only the last element of the program path
func WithShortProgramName(short bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetShortProgramName(short)
	}
}

// WithLanguage sets the language of diagnostics
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetLanguage(lang)
	}
}

// WithStdout sets the writer help is printed to
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetStdout(w)
	}
}

// WithStderr sets the writer diagnostics are printed to
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetStderr(w)
	}
}

// WithPermissiveNumbers accepts numbers followed by trailing text, using the longest
// valid prefix
func WithPermissiveNumbers(permissive bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetPermissiveNumbers(permissive)
	}
}

// WithExitFunc replaces os.Exit in ParseOrExit
func WithExitFunc(exit func(code int)) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetExitFunc(exit)
	}
}

// SetGrouping enables grouped single-character flags
func (p *Parser) SetGrouping(grouping bool) {
	p.grouping = grouping
}

// SetTypeNames shows or hides value type names in help output
func (p *Parser) SetTypeNames(show bool) {
	p.typeNames = show
}

// SetHelp sets the function run when the help flag is given. nil disables the help flag.
func (p *Parser) SetHelp(help HelpFunc) {
	p.help = help
}

// SetErrorDescription sets a text printed after every diagnostic
func (p *Parser) SetErrorDescription(description string) {
	p.description = description
}

// SetProgramName sets the program name used in diagnostics and help
func (p *Parser) SetProgramName(program string) {
	p.program = program
}

// SetShortProgramName displays only the last element of the program path
func (p *Parser) SetShortProgramName(short bool) {
	p.shortProgramName = short
}

// SetLanguage sets the language of diagnostics
func (p *Parser) SetLanguage(lang language.Tag) {
	p.lang = lang
}

// Language returns the language of diagnostics
func (p *Parser) Language() language.Tag {
	return p.lang
}

// SetStdout sets the writer help is printed to
func (p *Parser) SetStdout(w io.Writer) {
	p.stdout = w
}

// SetStderr sets the writer diagnostics are printed to
func (p *Parser) SetStderr(w io.Writer) {
	p.stderr = w
}

// SetPermissiveNumbers accepts numbers followed by trailing text
func (p *Parser) SetPermissiveNumbers(permissive bool) {
	p.registry.SetPermissive(permissive)
}

// SetExitFunc replaces os.Exit in ParseOrExit
func (p *Parser) SetExitFunc(exit func(code int)) {
	p.exitFunc = exit
}
