// Package registry holds the ordered table of runner detectors.
package registry

import (
	"slices"
	"strings"

	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/core/ports"
)

var (
	runPrefix       = []string{"run"}
	runScriptPrefix = []string{"run-script"}
	buildPrefix     = []string{"build"}
	nodeLockfiles   = []string{"bun.lockb", "bun.lock", "pnpm-lock.yaml", "yarn.lock", "package-lock.json"}
	pythonLockfiles = []string{"uv.lock", "poetry.lock", "pdm.lock"}
)

// Detector is one row of the registry. It matches when any of its markers exists
// in a directory and none of its Unless markers does.
type Detector struct {
	Name      string
	Ecosystem domain.Ecosystem
	Priority  int
	Markers   []string
	Unless    []string
	RunPrefix []string
}

// Table lists every detector in ascending priority. Priorities are unique.
var Table = []Detector{
	{Name: "bun", Ecosystem: domain.EcosystemNodeJs, Priority: 1, Markers: []string{"bun.lockb", "bun.lock"}, RunPrefix: runPrefix},
	{Name: "pnpm", Ecosystem: domain.EcosystemNodeJs, Priority: 2, Markers: []string{"pnpm-lock.yaml"}, RunPrefix: runPrefix},
	{Name: "yarn", Ecosystem: domain.EcosystemNodeJs, Priority: 3, Markers: []string{"yarn.lock"}, RunPrefix: runPrefix},
	{Name: "npm", Ecosystem: domain.EcosystemNodeJs, Priority: 4, Markers: []string{"package-lock.json"}, RunPrefix: runPrefix},
	{Name: "npm", Ecosystem: domain.EcosystemNodeJs, Priority: 5, Markers: []string{"package.json"}, Unless: nodeLockfiles, RunPrefix: runPrefix},
	{Name: "cargo", Ecosystem: domain.EcosystemRust, Priority: 6, Markers: []string{"Cargo.toml"}},
	{Name: "go", Ecosystem: domain.EcosystemGo, Priority: 7, Markers: []string{"go.mod"}},
	{Name: "uv", Ecosystem: domain.EcosystemPython, Priority: 8, Markers: []string{"uv.lock"}, RunPrefix: runPrefix},
	{Name: "poetry", Ecosystem: domain.EcosystemPython, Priority: 9, Markers: []string{"poetry.lock"}, RunPrefix: runPrefix},
	{Name: "pdm", Ecosystem: domain.EcosystemPython, Priority: 10, Markers: []string{"pdm.lock"}, RunPrefix: runPrefix},
	{Name: "pipenv", Ecosystem: domain.EcosystemPython, Priority: 11, Markers: []string{"Pipfile.lock", "Pipfile"}, RunPrefix: runPrefix},
	{Name: "uv", Ecosystem: domain.EcosystemPython, Priority: 12, Markers: []string{"pyproject.toml"}, Unless: pythonLockfiles, RunPrefix: runPrefix},
	{Name: "task", Ecosystem: domain.EcosystemTask, Priority: 13, Markers: []string{"Taskfile.yml", "Taskfile.yaml"}},
	{Name: "just", Ecosystem: domain.EcosystemJust, Priority: 14, Markers: []string{"justfile", "Justfile", ".justfile"}},
	{Name: "gradle", Ecosystem: domain.EcosystemJvm, Priority: 15, Markers: []string{"build.gradle.kts", "build.gradle"}},
	{Name: "mvn", Ecosystem: domain.EcosystemJvm, Priority: 16, Markers: []string{"pom.xml"}},
	{Name: "composer", Ecosystem: domain.EcosystemPhp, Priority: 17, Markers: []string{"composer.json"}, RunPrefix: runScriptPrefix},
	{Name: "rake", Ecosystem: domain.EcosystemRuby, Priority: 18, Markers: []string{"Rakefile"}},
	{Name: "swift", Ecosystem: domain.EcosystemSwift, Priority: 19, Markers: []string{"Package.swift"}},
	{Name: "zig", Ecosystem: domain.EcosystemZig, Priority: 20, Markers: []string{"build.zig"}, RunPrefix: buildPrefix},
	{Name: "make", Ecosystem: domain.EcosystemGeneric, Priority: 21, Markers: []string{"Makefile", "makefile"}},
}

// Match returns the runner this detector reports for a directory with the given entries.
func (d Detector) Match(entries map[string]struct{}) (domain.DetectedRunner, bool) {
	for _, u := range d.Unless {
		if _, ok := entries[u]; ok {
			return domain.DetectedRunner{}, false
		}
	}
	for _, m := range d.Markers {
		if _, ok := entries[m]; ok {
			return domain.DetectedRunner{
				Name:         d.Name,
				DetectedFile: m,
				Ecosystem:    d.Ecosystem,
				Priority:     d.Priority,
				RunPrefix:    slices.Clone(d.RunPrefix),
			}, true
		}
	}
	return domain.DetectedRunner{}, false
}

// Registry runs the detector table against directories.
type Registry struct {
	fs ports.FileSystem
}

// New creates a Registry reading directories through fs.
func New(fs ports.FileSystem) *Registry {
	return &Registry{fs: fs}
}

// Detect runs every detector against dir in priority order and drops runners
// whose name matches an ignore entry, ignoring case.
// An unreadable directory yields no runners.
func (r *Registry) Detect(dir string, ignore []string) []domain.DetectedRunner {
	entries := r.entries(dir)
	if len(entries) == 0 {
		return nil
	}

	var found []domain.DetectedRunner
	for _, d := range Table {
		runner, ok := d.Match(entries)
		if !ok || isIgnored(runner.Name, ignore) {
			continue
		}
		found = append(found, runner)
	}
	return found
}

// DetectAll is Detect without an ignore list.
func (r *Registry) DetectAll(dir string) []domain.DetectedRunner {
	return r.Detect(dir, nil)
}

// Lookup returns the detector row for a runner name, preferring the lowest priority.
func Lookup(name string) (Detector, bool) {
	for _, d := range Table {
		if d.Name == name {
			return d, true
		}
	}
	return Detector{}, false
}

func (r *Registry) entries(dir string) map[string]struct{} {
	list, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil
	}
	entries := make(map[string]struct{}, len(list))
	for _, e := range list {
		entries[e.Name()] = struct{}{}
	}
	return entries
}

func isIgnored(name string, ignore []string) bool {
	return slices.ContainsFunc(ignore, func(i string) bool {
		return strings.EqualFold(strings.TrimSpace(i), name)
	})
}
