// Package discovery finds the named scripts and targets a project exposes.
//
// Every strategy reports absence as (ScriptList{}, false): a missing, unreadable
// or malformed file is never an error.
package discovery

import (
	"path/filepath"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
)

// Discoverer runs discovery strategies against a project directory.
type Discoverer struct {
	fs ports.FileSystem
}

// New creates a Discoverer reading files through fs.
func New(fs ports.FileSystem) *Discoverer {
	return &Discoverer{fs: fs}
}

// ForRunner runs the strategy belonging to the runner's ecosystem.
// Ecosystems without a strategy report no result.
func (d *Discoverer) ForRunner(runner domain.DetectedRunner, dir string) (domain.ScriptList, bool) {
	switch runner.Ecosystem {
	case domain.EcosystemNodeJs:
		return d.PackageJSON(dir)
	case domain.EcosystemRust:
		return d.Cargo(dir)
	case domain.EcosystemPython:
		return d.Pyproject(dir)
	case domain.EcosystemGeneric:
		return d.Makefile(dir)
	case domain.EcosystemTask:
		return d.Taskfile(dir)
	case domain.EcosystemJust:
		return d.Justfile(dir)
	case domain.EcosystemPhp:
		return d.Composer(dir)
	default:
		return domain.ScriptList{}, false
	}
}

// DiscoverAll runs every strategy and returns each list that is present.
func (d *Discoverer) DiscoverAll(dir string) []domain.ScriptList {
	strategies := []func(string) (domain.ScriptList, bool){
		d.PackageJSON,
		d.Cargo,
		d.Pyproject,
		d.Makefile,
		d.Taskfile,
		d.Justfile,
		d.Composer,
	}

	var lists []domain.ScriptList
	for _, strategy := range strategies {
		if list, ok := strategy(dir); ok {
			lists = append(lists, list)
		}
	}
	return lists
}

// firstExisting returns the first of names that exists as a regular file in dir.
func (d *Discoverer) firstExisting(dir string, names ...string) (string, bool) {
	for _, name := range names {
		info, err := d.fs.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return name, true
		}
	}
	return "", false
}

// read returns the contents of the first existing file among names.
func (d *Discoverer) read(dir string, names ...string) (string, []byte, bool) {
	name, ok := d.firstExisting(dir, names...)
	if !ok {
		return "", nil, false
	}
	data, err := d.fs.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", nil, false
	}
	return name, data, true
}
