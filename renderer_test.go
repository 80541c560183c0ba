package goflag

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParser_PrintUsage(t *testing.T) {
	var (
		verbose bool
		scale   float64
	)
	p, _ := newTestParser(t,
		WithVar(&verbose, "verbose", "print more"),
		WithAlias("v", "verbose"),
		WithVar(&scale, "scale", "scaling factor"),
		WithFunc(func(string) bool { return true }, "tag", ""),
		WithFunc(func(string) bool { return true }, "output-dir", "where to write"),
		WithFunc(func(string) bool { return true }, "größe", ""))

	b := &bytes.Buffer{}
	p.PrintUsage(b)
	assert.Equal(t, `Usage: prog ...
    -verbose, -v
        print more
    -scale float
        scaling factor
    -tag TAG
    -output-dir OUTPUT-DIR
        where to write
    -größe GRößE
`, b.String())

	p.SetTypeNames(false)
	b.Reset()
	p.PrintUsage(b)
	assert.Contains(t, b.String(), "    -scale\n        scaling factor\n")
	assert.Contains(t, b.String(), "    -tag\n")
}

func TestParser_DefaultHelp(t *testing.T) {
	var n int
	out := &bytes.Buffer{}
	p, _ := newTestParser(t,
		WithVar(&n, "n", "how many"),
		WithStdout(out),
		WithLanguage(language.French),
		WithDefaultHelp())

	err := p.Parse([]string{"-help"}, nil)
	assert.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, out.String(), "-n int\n        how many\n")
}

func TestParser_FlagUsageColor(t *testing.T) {
	var scale float64
	p, _ := newTestParser(t, WithVar(&scale, "scale", ""))
	opt, _ := p.Lookup("scale")

	dim := color.New(color.Faint)
	dim.EnableColor()
	usage := p.FlagUsage(opt, dim)
	assert.Contains(t, usage, "\x1b[2m")
	assert.Contains(t, usage, "float")

	assert.Equal(t, "    -scale float", p.FlagUsage(opt, nil))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "a short text", 20, []string{"a short text"}},
		{"wraps", "a bb ccc dddd", 6, []string{"a bb", "ccc", "dddd"}},
		{"long word", "abcdefgh ij", 4, []string{"abcdefgh", "ij"}},
		{"no width", "a  b", 0, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}
