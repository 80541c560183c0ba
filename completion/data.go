// Package completion generates shell completion scripts for the flags of a parser
package completion

// Flag is the completion data of one flag. Names are given without dashes.
type Flag struct {
	Name        string
	Alias       string // first alias, if any
	Description string
	TakesValue  bool
	TypeName    string // type of the value, may be empty
}

// Data is used to store the completion data for all configured flags in registration order
type Data struct {
	Flags []Flag
}

// Names returns every flag name and alias prefixed with a single dash
func (d Data) Names() []string {
	names := make([]string, 0, len(d.Flags))
	for _, f := range d.Flags {
		names = append(names, "-"+f.Name)
		if f.Alias != "" {
			names = append(names, "-"+f.Alias)
		}
	}

	return names
}

// ValueFlags returns the dash-prefixed names and aliases of the flags which take a value
func (d Data) ValueFlags() []string {
	var names []string
	for _, f := range d.Flags {
		if !f.TakesValue {
			continue
		}
		names = append(names, "-"+f.Name)
		if f.Alias != "" {
			names = append(names, "-"+f.Alias)
		}
	}

	return names
}
