// Package console decides how reports are rendered on the current terminal.
package console

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/devrun/internal/ui/output"
	"golang.org/x/term"
)

// Mode is the rendering mode for reports.
type Mode int

const (
	// ModeInteractive renders with the full color profile of the terminal.
	ModeInteractive Mode = iota
	// ModeCI renders with basic ANSI colors.
	ModeCI
	// ModePlain renders without any escape sequences.
	ModePlain
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeCI:
		return "ci"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Detect returns the mode for stdout.
func Detect() Mode {
	return DetectFor(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// DetectFor picks the mode from a TTY flag and the value of the CI variable.
// CI wins over the TTY check.
func DetectFor(isTTY bool, ci string) Mode {
	if ci == "true" || ci == "1" {
		return ModeCI
	}
	if !isTTY {
		return ModePlain
	}
	return ModeInteractive
}

// Profile returns the color profile selector for the mode. NO_COLOR is honored by all modes.
func (m Mode) Profile() func() termenv.Profile {
	switch m {
	case ModeInteractive:
		return output.ColorProfile
	case ModeCI:
		return output.ColorProfileANSI
	default:
		return output.ColorProfilePlain
	}
}
