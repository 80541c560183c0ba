package convert

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/napalu/goflag/errs"
	"github.com/napalu/goflag/i18n"
)

type number interface {
	~int64 | ~uint64 | ~float64
}

// parsePrefix parses text with parse. In permissive mode leading white space is skipped
// and, when the whole text does not parse, the longest prefix that does is used. Only
// prefixes inside the leading run of number characters are tried. A range error is
// final in both modes: a shorter prefix is never tried after one.
func parsePrefix[N number](text string, permissive, float bool, parse func(string) (N, error)) (N, error) {
	if permissive {
		text = strings.TrimLeft(text, " \t\n\v\f\r")
	}

	n, err := parse(text)
	if err == nil || !permissive || errors.Is(err, strconv.ErrRange) {
		return n, err
	}

	for i := min(numberRun(text, float), len(text)-1); i > 0; i-- {
		n, perr := parse(text[:i])
		if perr == nil {
			return n, nil
		}
		if errors.Is(perr, strconv.ErrRange) {
			return n, perr
		}
	}

	return n, err
}

// numberRun returns the length of the leading part of text made of characters which can
// continue a number: a sign, a base prefix, digits of that base, underscores, and for
// floats one point, one exponent and the words inf, infinity and nan.
func numberRun(text string, float bool) int {
	i := 0
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	if float {
		for _, word := range []string{"infinity", "inf", "nan"} {
			if len(text)-i >= len(word) && strings.EqualFold(text[i:i+len(word)], word) {
				return i + len(word)
			}
		}
	}

	digit, exponent := isDecimal, "eE"
	if len(text)-i >= 2 && text[i] == '0' {
		switch text[i+1] {
		case 'x', 'X':
			digit, exponent = isHex, "pP"
			i += 2
		case 'o', 'O':
			digit, exponent = isOctal, ""
			i += 2
		case 'b', 'B':
			digit, exponent = isBinary, ""
			i += 2
		default:
			if !float {
				digit = isOctal
			}
		}
	}

	seenDot, seenExp := !float, !float || exponent == ""
	for ; i < len(text); i++ {
		c := text[i]
		switch {
		case digit(c):
		case c == '_' && i+1 < len(text) && digit(text[i+1]):
		case c == '.' && !seenDot:
			seenDot = true
		case !seenExp && strings.IndexByte(exponent, c) >= 0:
			seenExp, seenDot, digit = true, true, isDecimal
			if i+1 < len(text) && (text[i+1] == '+' || text[i+1] == '-') {
				i++
			}
		default:
			return i
		}
	}

	return i
}

func isDecimal(c byte) bool {
	return '0' <= c && c <= '9'
}

func isOctal(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinary(c byte) bool {
	return c == '0' || c == '1'
}

func isHex(c byte) bool {
	return isDecimal(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func numericError(err error, syntax i18n.TranslatableError, text string, t reflect.Type) error {
	if errors.Is(err, strconv.ErrRange) {
		return errs.ErrParseOverflow.WithArgs(text, t.String())
	}

	return syntax.WithArgs(text)
}
