package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `'`, `\'`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	return desc
}

func escapeFish(desc string) string {
	return strings.ReplaceAll(desc, "'", "\\'")
}

func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	s = strings.ReplaceAll(s, "'", "'\\''")
	return s
}

// functionName turns a program name into a shell identifier
func functionName(programName string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, programName)
}
