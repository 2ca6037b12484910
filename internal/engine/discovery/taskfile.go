package discovery

import (
	"go.trai.ch/devrun/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Taskfile lists the keys of the "tasks" mapping in document order.
// Tasks marked "internal: true" are skipped.
func (d *Discoverer) Taskfile(dir string) (domain.ScriptList, bool) {
	name, data, ok := d.read(dir, "Taskfile.yml", "Taskfile.yaml")
	if !ok {
		return domain.ScriptList{}, false
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return domain.ScriptList{}, false
	}
	tasks := mappingValue(doc.Content[0], "tasks")
	if tasks == nil {
		return domain.ScriptList{}, false
	}

	scripts := make([]domain.ProjectScript, 0, len(tasks.Content)/2)
	for i := 0; i+1 < len(tasks.Content); i += 2 {
		key, def := tasks.Content[i], tasks.Content[i+1]
		if isInternalTask(def) {
			continue
		}
		scripts = append(scripts, domain.ProjectScript{Name: key.Value, Command: "task " + key.Value})
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: name}, true
}

// mappingValue returns the mapping stored under key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}

func isInternalTask(def *yaml.Node) bool {
	if def.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(def.Content); i += 2 {
		if def.Content[i].Value == "internal" {
			var internal bool
			return def.Content[i+1].Decode(&internal) == nil && internal
		}
	}
	return false
}
