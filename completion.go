package goflag

import (
	"path/filepath"

	"github.com/napalu/goflag/completion"
)

// CompletionData returns the flags in the form used by the shell completion generators
func (p *Parser) CompletionData() completion.Data {
	var data completion.Data
	for _, opt := range p.Options() {
		alias, _ := p.AliasFor(opt.Name)
		data.Flags = append(data.Flags, completion.Flag{
			Name:        opt.Name,
			Alias:       alias,
			Description: opt.Help,
			TakesValue:  opt.TakesValue(),
			TypeName:    opt.TypeName(),
		})
	}

	return data
}

// CompletionScript returns the completion script of shell for this parser's flags
func (p *Parser) CompletionScript(shell string) (string, error) {
	gen, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return gen.Generate(filepath.Base(p.ProgramName()), p.CompletionData()), nil
}
