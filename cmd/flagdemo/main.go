package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/napalu/goflag"
)

type keyValue struct {
	Key   string
	Value string
}

func parseKeyValue(s string) (keyValue, error) {
	key, value, ok := strings.Cut(s, ":")
	if !ok || key == "" || value == "" {
		return keyValue{}, fmt.Errorf("%q must be of format 'key:value'", s)
	}

	return keyValue{Key: key, Value: value}, nil
}

const colorDescription = `Valid arguments are:
  - ‘always’, ‘yes’, ‘force’
  - ‘never’, ‘no’, ‘none’
  - ‘auto’, ‘tty’, ‘if-tty’`

func main() {
	var (
		long       bool
		n          = 5
		bar        = "baz"
		scale      = 1.0
		x          = keyValue{Key: "<none>", Value: "<none>"}
		noHelp     bool
		completion string
		p          *goflag.Parser
	)

	validColor := func(arg string) bool {
		switch arg {
		case "yes", "always", "force", "no", "never", "none", "auto", "tty", "if-tty":
			return true
		}
		p.SetErrorDescription(colorDescription)
		return false
	}

	p, err := goflag.NewParserWith(
		goflag.WithType("key:value", parseKeyValue),
		goflag.WithVar(&long, "l", "Long listing"),
		goflag.WithVar(&n, "n", "# of iterations"),
		goflag.WithVar(&bar, "bar", "a string"),
		goflag.WithAlias("b", "bar"),
		goflag.WithVar(&scale, "scale", "scale for something"),
		goflag.WithFunc(func(arg string) bool {
			fmt.Println("foo:", arg)
			return true
		}, "foo", "Print value"),
		goflag.WithFunc(validColor, "color", "colorize the output"),
		goflag.WithFunc(func(string) bool { return true }, "플래그", "Flag with unicode name"),
		goflag.WithVar(&x, "x", "x"),
		goflag.WithVar(&noHelp, "no-help", ""),
		goflag.WithVar(&completion, "completion", "print the completion script for a shell"),
		goflag.WithGrouping(true),
		goflag.WithShortProgramName(true),
		goflag.WithDefaultHelp())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var args []string
	p.ParseOrExit(os.Args[1:], func(arg string) {
		args = append(args, arg)
	})

	if completion != "" {
		script, err := p.CompletionScript(completion)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(script)
		return
	}

	l := "no"
	if long {
		l = "yes"
	}
	fmt.Println("l:", l)
	fmt.Println("n:", n)
	fmt.Println("bar:", bar)
	fmt.Println("scale:", scale)
	fmt.Printf("x: '%s:%s'\n", x.Key, x.Value)
	if len(args) > 0 {
		fmt.Printf("Arguments: `%s`\n", strings.Join(args, "`, `"))
	}
}
