package goflag

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/iancoleman/strcase"
	"github.com/napalu/goflag/errs"
	"github.com/napalu/goflag/internal/util"
)

const (
	flagIndent = "    "
	helpIndent = "        "
)

// DefaultUsage prints the usage of every flag to the parser's output writer. It is the
// help handler installed by WithDefaultHelp.
func (p *Parser) DefaultUsage(program string) {
	p.printUsage(util.Stdout(p.stdout), program)
}

// PrintUsage prints the usage of every flag to w, in registration order. Type names are
// dimmed when w is a terminal.
func (p *Parser) PrintUsage(w io.Writer) {
	p.printUsage(util.Stdout(w), p.ProgramName())
}

func (p *Parser) printUsage(w io.Writer, program string) {
	dim := color.New(color.Faint)
	if util.IsTerminal(w) {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}
	width := util.Width(w) - len(helpIndent)

	fmt.Fprintln(w, p.bundle.TL(p.lang, errs.MsgUsageKey, program))
	for _, opt := range p.Options() {
		fmt.Fprintln(w, p.FlagUsage(opt, dim))
		for _, line := range wrap(opt.Help, width) {
			fmt.Fprintln(w, helpIndent+line)
		}
	}
}

// FlagUsage returns the first usage line of opt: the flag, its first alias and, for flags
// taking a value, the value's type name. dim may be nil.
func (p *Parser) FlagUsage(opt *Option, dim *color.Color) string {
	var b strings.Builder
	b.WriteString(flagIndent + "-" + opt.Name)
	if alias, found := p.AliasFor(opt.Name); found {
		b.WriteString(", -" + alias)
	}

	if opt.TakesValue() && p.typeNames {
		name := opt.TypeName()
		if name == "" {
			name = placeholder(opt.Name)
		}
		if dim != nil {
			name = dim.Sprint(name)
		}
		b.WriteString(" " + name)
	}

	return b.String()
}

// placeholder names the value of a flag without a type name after the flag itself
func placeholder(flag string) string {
	if isASCII(flag) {
		delimiter := uint8('_')
		if strings.Contains(flag, "-") {
			delimiter = '-'
		}
		return strcase.ToScreamingDelimited(flag, delimiter, "", true)
	}

	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, flag)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

// wrap breaks text into lines of at most width runes at white space. Words longer than
// width are not split.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}

	return append(lines, line)
}
