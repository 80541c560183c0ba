package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    # Handle flags
    if ($wordToComplete.StartsWith('-')) {
        @(`, programName))

	for _, f := range data.Flags {
		desc := f.Description
		if desc == "" {
			desc = f.Name
		}
		names := []string{f.Name}
		if f.Alias != "" {
			names = append(names, f.Alias)
		}
		for _, name := range names {
			script.WriteString(fmt.Sprintf(`
            [System.Management.Automation.CompletionResult]::new('-%[1]s', '%[1]s', 'ParameterName', '%[2]s')`,
				escapePowerShell(name), escapePowerShell(desc)))
		}
	}

	script.WriteString(`
        ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
    }
}
`)

	return script.String()
}
