package discovery

import (
	"maps"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/devrun/internal/core/domain"
)

const pyprojectFile = "pyproject.toml"

// Pyproject reads [tool.poetry.scripts] followed by [project.scripts].
// Names present in both tables are listed twice. Within a table names are sorted.
func (d *Discoverer) Pyproject(dir string) (domain.ScriptList, bool) {
	_, data, ok := d.read(dir, pyprojectFile)
	if !ok {
		return domain.ScriptList{}, false
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return domain.ScriptList{}, false
	}

	var scripts []domain.ProjectScript
	scripts = appendTable(scripts, lookupTable(doc, "tool", "poetry", "scripts"))
	scripts = appendTable(scripts, lookupTable(doc, "project", "scripts"))
	if len(scripts) == 0 {
		return domain.ScriptList{}, false
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: pyprojectFile}, true
}

// lookupTable walks nested tables by key. Anything that is not a table yields nil.
func lookupTable(doc map[string]any, path ...string) map[string]any {
	current := doc
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func appendTable(scripts []domain.ProjectScript, table map[string]any) []domain.ProjectScript {
	for _, name := range slices.Sorted(maps.Keys(table)) {
		cmd, _ := table[name].(string)
		scripts = append(scripts, domain.ProjectScript{Name: name, Command: cmd})
	}
	return scripts
}
