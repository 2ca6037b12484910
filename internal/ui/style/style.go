// Package style holds the palette and glyphs devrun renders reports and log
// lines with. Colors are assigned by role, not by hue, so a report never
// decides on its own what "selected" or "ignored" looks like.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/devrun/internal/core/domain"
)

// Roles.
var (
	// Prompt marks the devrun command itself in hints and dry runs.
	Prompt = lipgloss.Color("#8B5CF6")
	// Muted is used for paths, detected files, commands and log attributes.
	Muted = lipgloss.Color("#667085")
	// OK marks selected runners, installed tools and known scripts.
	OK = lipgloss.Color("#22A06B")
	// Fail marks missing tools and error log lines.
	Fail = lipgloss.Color("#D93025")
	// Caution marks lockfile conflicts, ignored runners and warnings.
	Caution = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Circle  = "○"
)

// ecosystemColors tints runner names by the ecosystem that detected them.
var ecosystemColors = map[domain.Ecosystem]lipgloss.Color{
	domain.EcosystemNodeJs:  "#68A063",
	domain.EcosystemRust:    "#DEA584",
	domain.EcosystemGo:      "#00ADD8",
	domain.EcosystemPython:  "#3776AB",
	domain.EcosystemTask:    "#29BEB0",
	domain.EcosystemJust:    "#C7A4FF",
	domain.EcosystemJvm:     "#E76F00",
	domain.EcosystemPhp:     "#777BB4",
	domain.EcosystemRuby:    "#CC342D",
	domain.EcosystemSwift:   "#F05138",
	domain.EcosystemZig:     "#F7A41D",
	domain.EcosystemGeneric: "#A0A7B4",
}

// Ecosystem returns the color runner names of eco are printed in.
// Unknown ecosystems fall back to Prompt.
func Ecosystem(eco domain.Ecosystem) lipgloss.Color {
	if c, ok := ecosystemColors[eco]; ok {
		return c
	}
	return Prompt
}

// Mark is a glyph with the color it is drawn in. An empty Glyph means the
// line carries no prefix.
type Mark struct {
	Glyph string
	Color lipgloss.Color
}

// Prefix returns the glyph followed by a space, or "" for a bare mark.
func (m Mark) Prefix() string {
	if m.Glyph == "" {
		return ""
	}
	return m.Glyph + " "
}

// ForLevel returns the mark of a log line at level l. Levels between the
// slog constants round down.
func ForLevel(l slog.Level) Mark {
	switch {
	case l >= slog.LevelError:
		return Mark{Glyph: Cross, Color: Fail}
	case l >= slog.LevelWarn:
		return Mark{Glyph: Warning, Color: Caution}
	case l >= slog.LevelInfo:
		return Mark{Color: Muted}
	default:
		return Mark{Glyph: Circle, Color: Prompt}
	}
}

// ForTool returns the doctor mark of a tool that is or is not on PATH.
func ForTool(installed bool) Mark {
	if installed {
		return Mark{Glyph: Check, Color: OK}
	}
	return Mark{Glyph: Cross, Color: Fail}
}
