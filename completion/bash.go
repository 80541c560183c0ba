package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Stop completing flags after a terminator
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" == "-" || "${COMP_WORDS[i]}" == "--" ]]; then
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
        fi
    done

    # Handle flag values
    case "${prev}" in`, fn))

	if valueFlags := data.ValueFlags(); len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(`
    esac

    # If we're completing a flag
    if [[ "$cur" == -* ]]; then
        local flags=()`)

	for _, f := range data.Flags {
		script.WriteString(fmt.Sprintf(`
        flags+=("-%s[%s]")`, f.Name, escapeBash(f.Description)))
		if f.Alias != "" {
			script.WriteString(fmt.Sprintf(`
        flags+=("-%s[%s]")`, f.Alias, escapeBash(f.Description)))
		}
	}

	script.WriteString(fmt.Sprintf(`

        COMPREPLY=( $(compgen -W "${flags[*]%%%%[*}" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F __%[1]s_completion %[2]s
`, fn, programName))

	return script.String()
}
