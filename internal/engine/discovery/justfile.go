package discovery

import (
	"strings"

	"go.trai.ch/devrun/internal/core/domain"
)

// Justfile lists the public recipes of a justfile.
//
// Recipe headers start at column 0 and have the form "name [params...]:".
// Assignments (":="), comments, attributes and recipes starting with '_' are skipped.
func (d *Discoverer) Justfile(dir string) (domain.ScriptList, bool) {
	name, data, ok := d.read(dir, "justfile", "Justfile", ".justfile")
	if !ok {
		return domain.ScriptList{}, false
	}

	var scripts []domain.ProjectScript
	seen := map[string]bool{}
	for line := range strings.Lines(string(data)) {
		recipe, ok := justRecipe(strings.TrimRight(line, "\r\n"))
		if !ok || seen[recipe] {
			continue
		}
		seen[recipe] = true
		scripts = append(scripts, domain.ProjectScript{Name: recipe, Command: "just " + recipe})
	}
	if len(scripts) == 0 {
		return domain.ScriptList{}, false
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: name}, true
}

func justRecipe(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	switch line[0] {
	case ' ', '\t', '#', '[':
		return "", false
	}

	header, rest, found := strings.Cut(line, ":")
	if !found || strings.HasPrefix(rest, "=") {
		return "", false
	}

	fields := strings.Fields(header)
	if len(fields) == 0 {
		return "", false
	}
	recipe := strings.TrimPrefix(fields[0], "@")
	if !isRecipeName(recipe) || strings.HasPrefix(recipe, "_") {
		return "", false
	}
	switch recipe {
	case "alias", "set", "export", "import", "mod":
		return "", false
	}
	return recipe, true
}

func isRecipeName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}
