package discovery

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/devrun/internal/core/domain"
)

const (
	packageJSONFile  = "package.json"
	composerJSONFile = "composer.json"
)

// PackageJSON reads the top-level "scripts" object of package.json.
// A present but empty object yields an empty list that still counts as found.
func (d *Discoverer) PackageJSON(dir string) (domain.ScriptList, bool) {
	_, data, ok := d.read(dir, packageJSONFile)
	if !ok {
		return domain.ScriptList{}, false
	}

	entries, ok := scriptsObject(data)
	if !ok {
		return domain.ScriptList{}, false
	}

	scripts := make([]domain.ProjectScript, 0, len(entries))
	for _, e := range entries {
		scripts = append(scripts, domain.ProjectScript{Name: e.key, Command: stringValue(e.value)})
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: packageJSONFile}, true
}

// Composer reads the "scripts" object of composer.json. Each script runs
// through "composer run-script".
func (d *Discoverer) Composer(dir string) (domain.ScriptList, bool) {
	_, data, ok := d.read(dir, composerJSONFile)
	if !ok {
		return domain.ScriptList{}, false
	}

	entries, ok := scriptsObject(data)
	if !ok {
		return domain.ScriptList{}, false
	}

	scripts := make([]domain.ProjectScript, 0, len(entries))
	for _, e := range entries {
		scripts = append(scripts, domain.ProjectScript{Name: e.key, Command: "composer run-script " + e.key})
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: composerJSONFile}, true
}

type jsonEntry struct {
	key   string
	value json.RawMessage
}

// scriptsObject extracts the "scripts" member of a JSON document as ordered entries.
// Repeated keys keep their first position and their last value.
func scriptsObject(data []byte) ([]jsonEntry, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	raw, ok := doc["scripts"]
	if !ok {
		return nil, false
	}
	return orderedObject(raw)
}

func orderedObject(raw json.RawMessage) ([]jsonEntry, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	var entries []jsonEntry
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, ok := tok.(string)
		if !ok {
			return nil, false
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		if i, seen := index[key]; seen {
			entries[i].value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, jsonEntry{key: key, value: value})
	}
	return entries, true
}

// stringValue returns the JSON string in raw, or "" for any other kind of value.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
