// Package parse provides the argument stream walked by the parser and shell-style
// splitting of argument strings.
package parse

import (
	"github.com/google/shlex"
	"github.com/napalu/goflag/errs"
)

// Split splits s into arguments using POSIX shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, errs.ErrParseSplit.WithArgs(s).Wrap(err)
	}

	return args, nil
}
