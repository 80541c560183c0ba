package completion

import (
	"sort"

	"github.com/napalu/goflag/errs"
)

// Generator renders a completion script for one shell
type Generator interface {
	Generate(programName string, data Data) string
}

var generators = map[string]Generator{
	"bash":       &BashGenerator{},
	"zsh":        &ZshGenerator{},
	"fish":       &FishGenerator{},
	"powershell": &PowerShellGenerator{},
}

// GetGenerator returns the generator for shell
func GetGenerator(shell string) (Generator, error) {
	g, ok := generators[shell]
	if !ok {
		return nil, errs.ErrUnknownShell.WithArgs(shell)
	}

	return g, nil
}

// Shells returns the supported shell names, sorted
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}
