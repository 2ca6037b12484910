package discovery

import "go.trai.ch/devrun/internal/core/domain"

const cargoManifest = "Cargo.toml"

var cargoSubcommands = []string{"build", "test", "run", "check", "clippy", "fmt", "doc", "bench"}

// Cargo returns the common cargo subcommands when Cargo.toml exists.
// The manifest itself is not parsed.
func (d *Discoverer) Cargo(dir string) (domain.ScriptList, bool) {
	if _, ok := d.firstExisting(dir, cargoManifest); !ok {
		return domain.ScriptList{}, false
	}

	scripts := make([]domain.ProjectScript, 0, len(cargoSubcommands))
	for _, name := range cargoSubcommands {
		scripts = append(scripts, domain.ProjectScript{Name: name, Command: "cargo " + name})
	}
	return domain.ScriptList{Scripts: scripts, SourceFile: cargoManifest}, true
}
