package shell

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/devrun/internal/core/ports"
)

// DefaultProbeTimeout bounds a single version query.
const DefaultProbeTimeout = 5 * time.Second

// versionArgs lists tools that do not report their version with --version.
var versionArgs = map[string][]string{
	"npm":  {"-v"},
	"pnpm": {"-v"},
	"yarn": {"-v"},
	"bun":  {"-v"},
	"go":   {"version"},
	"zig":  {"version"},
}

// Prober implements ports.ToolProber by looking tools up on PATH.
type Prober struct {
	Timeout time.Duration
}

// NewProber creates a Prober with DefaultProbeTimeout.
func NewProber() *Prober {
	return &Prober{Timeout: DefaultProbeTimeout}
}

// Probe reports whether tool is on PATH and, if so, its version.
// A tool that is found but fails to report a version is still installed.
func (p *Prober) Probe(ctx context.Context, tool string) ports.ToolStatus {
	status := ports.ToolStatus{Name: tool}

	path, err := exec.LookPath(tool)
	if err != nil {
		return status
	}
	status.Installed = true
	status.Path = path

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	args, ok := versionArgs[tool]
	if !ok {
		args = []string{"--version"}
	}
	out, err := exec.CommandContext(ctx, path, args...).Output() //nolint:gosec // path comes from LookPath
	if err != nil {
		return status
	}
	status.Version = parseVersion(out)
	return status
}

// parseVersion picks the version number out of a tool's version output:
// the first word of the first non-empty line that starts with a digit, or
// the whole line when there is none. A leading "v" is dropped.
func parseVersion(out []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		for _, word := range strings.Fields(line) {
			word = strings.TrimPrefix(word, "v")
			if word != "" && word[0] >= '0' && word[0] <= '9' {
				return word
			}
		}
		return line
	}
	return ""
}
