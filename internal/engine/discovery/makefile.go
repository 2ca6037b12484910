package discovery

import (
	"strings"

	"go.trai.ch/devrun/internal/core/domain"
)

// Makefile lists the targets of Makefile, or makefile when the former is absent.
//
// The scan is textual: lines starting with a tab, a space or '#' are skipped, and
// the target is whatever precedes the first ':'. Special targets (leading '.'),
// variable assignments and names containing '$' are rejected.
func (d *Discoverer) Makefile(dir string) (domain.ScriptList, bool) {
	name, data, ok := d.read(dir, "Makefile", "makefile")
	if !ok {
		return domain.ScriptList{}, false
	}

	var scripts []domain.ProjectScript
	for line := range strings.Lines(string(data)) {
		target, ok := makeTarget(strings.TrimRight(line, "\r\n"))
		if !ok {
			continue
		}
		scripts = append(scripts, domain.ProjectScript{Name: target, Command: "make " + target})
	}
	if len(scripts) == 0 {
		return domain.ScriptList{}, false
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: name}, true
}

func makeTarget(line string) (string, bool) {
	if line == "" || line[0] == '\t' || line[0] == ' ' || line[0] == '#' {
		return "", false
	}
	before, _, found := strings.Cut(line, ":")
	if !found {
		return "", false
	}
	target := strings.TrimSpace(before)
	if target == "" || strings.HasPrefix(target, ".") || strings.ContainsAny(target, "=$") {
		return "", false
	}
	return target, true
}
