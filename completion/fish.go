package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, f := range data.Flags {
		// flags use a single dash, which fish calls old-style options
		cmd := fmt.Sprintf("complete -c %s -o %s", programName, f.Name)
		if f.Alias != "" {
			cmd = fmt.Sprintf("%s -o %s", cmd, f.Alias)
		}
		if f.TakesValue {
			cmd += " -r"
		}
		cmd = fmt.Sprintf("%s -d '%s'", cmd, escapeFish(f.Description))
		script.WriteString(cmd + "\n")
	}

	return script.String()
}
