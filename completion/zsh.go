package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[2]s_completion() {
    _arguments -S \`, programName, fn))

	for _, f := range data.Flags {
		names := []string{"-" + f.Name}
		if f.Alias != "" {
			names = append(names, "-"+f.Alias)
		}
		for _, name := range names {
			spec := fmt.Sprintf("'*%s[%s]", name, escapeZsh(f.Description))
			if f.TakesValue {
				label := f.TypeName
				if label == "" {
					label = "value"
				}
				spec += fmt.Sprintf(":%s:_files", strings.ReplaceAll(escapeZsh(label), ":", "\\:"))
			}
			script.WriteString(fmt.Sprintf(`
        %s' \`, spec))
		}
	}

	script.WriteString(fmt.Sprintf(`
        '*:file:_files'
}

__%[1]s_completion "$@"
`, fn))

	return script.String()
}
