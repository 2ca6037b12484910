package domain

// Ecosystem groups runners that share one script discovery strategy.
type Ecosystem uint8

const (
	// EcosystemUnknown is the zero value and never produced by a detector.
	EcosystemUnknown Ecosystem = iota
	// EcosystemNodeJs covers npm, pnpm, yarn and bun projects.
	EcosystemNodeJs
	// EcosystemRust covers cargo projects.
	EcosystemRust
	// EcosystemGo covers go modules.
	EcosystemGo
	// EcosystemPython covers uv, poetry, pdm and pipenv projects.
	EcosystemPython
	// EcosystemTask covers go-task Taskfiles.
	EcosystemTask
	// EcosystemJust covers justfiles.
	EcosystemJust
	// EcosystemJvm covers gradle and maven builds.
	EcosystemJvm
	// EcosystemPhp covers composer projects.
	EcosystemPhp
	// EcosystemRuby covers rake projects.
	EcosystemRuby
	// EcosystemSwift covers Swift Package Manager projects.
	EcosystemSwift
	// EcosystemZig covers zig build projects.
	EcosystemZig
	// EcosystemGeneric covers plain Makefiles.
	EcosystemGeneric
)

var ecosystemNames = map[Ecosystem]string{
	EcosystemUnknown: "unknown",
	EcosystemNodeJs:  "Node.js",
	EcosystemRust:    "Rust",
	EcosystemGo:      "Go",
	EcosystemPython:  "Python",
	EcosystemTask:    "Task",
	EcosystemJust:    "Just",
	EcosystemJvm:     "JVM",
	EcosystemPhp:     "PHP",
	EcosystemRuby:    "Ruby",
	EcosystemSwift:   "Swift",
	EcosystemZig:     "Zig",
	EcosystemGeneric: "Generic",
}

// String returns the display name of the ecosystem.
func (e Ecosystem) String() string {
	if name, ok := ecosystemNames[e]; ok {
		return name
	}
	return ecosystemNames[EcosystemUnknown]
}
