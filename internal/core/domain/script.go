package domain

// ProjectScript is a named command exposed by a project configuration file.
type ProjectScript struct {
	Name    string
	Command string
}

// ScriptList is the result of one successful script discovery.
type ScriptList struct {
	Scripts    []ProjectScript
	SourceFile string
}

// Names returns the script names in discovery order.
func (l ScriptList) Names() []string {
	names := make([]string, 0, len(l.Scripts))
	for _, s := range l.Scripts {
		names = append(names, s.Name)
	}
	return names
}
