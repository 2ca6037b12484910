// Package report renders the human-readable output of the devrun commands.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/devrun/internal/app"
	"go.trai.ch/devrun/internal/core/domain"
	"go.trai.ch/devrun/internal/ui/style"
)

// Printer writes reports to a single writer.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

// New creates a Printer for w using the given color profile.
func New(w io.Writer, profile termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Printer{w: w, r: r}
}

func (p *Printer) bold(s string) string {
	return p.r.NewStyle().Bold(true).Render(s)
}

func (p *Printer) dim(s string) string {
	return p.r.NewStyle().Foreground(style.Muted).Render(s)
}

func (p *Printer) color(c lipgloss.Color, s string) string {
	return p.r.NewStyle().Foreground(c).Render(s)
}

// runner renders a runner name in its ecosystem's color.
func (p *Printer) runner(r domain.DetectedRunner) string {
	return p.color(style.Ecosystem(r.Ecosystem), r.Name)
}

func (p *Printer) mark(m style.Mark) string {
	return p.color(m.Color, m.Glyph)
}

func (p *Printer) println(parts ...string) {
	_, _ = fmt.Fprintln(p.w, strings.Join(parts, ""))
}

// List prints the scripts of the selected runner.
func (p *Printer) List(rep app.ListReport) {
	p.println(p.bold("Detected: "), p.runner(rep.Runner), " (", rep.Runner.DetectedFile, ")")
	p.println()

	if !rep.Found || len(rep.Scripts.Scripts) == 0 {
		p.println(p.dim("No scripts found for this project type."))
		return
	}

	p.println(p.bold("Available scripts:"))
	width := 0
	for _, s := range rep.Scripts.Scripts {
		width = max(width, len(s.Name))
	}
	for _, s := range rep.Scripts.Scripts {
		line := "  " + p.color(style.OK, s.Name)
		if s.Command != "" {
			line += strings.Repeat(" ", width-len(s.Name)+2) + p.dim(s.Command)
		}
		p.println(line)
	}
}

// Why prints the runner that would be used and the runners that were passed over.
func (p *Printer) Why(rep app.WhyReport) {
	if rep.Selected == nil {
		p.println(p.color(style.Caution, style.Warning+" All detected runners were ignored!"))
		p.println()
		p.println(p.bold("Detected runners:"))
		for _, o := range rep.Others {
			p.println("  ", p.runner(o.Runner), " (", o.Runner.DetectedFile, ") ", p.dim("(ignored via --ignore)"))
		}
		return
	}

	sel := rep.Selected
	p.println(p.bold("Using: "), p.runner(*sel))
	p.println(fmt.Sprintf("  Found %s in %s (level %d)", sel.DetectedFile, rep.Dir, rep.Level))
	p.println(fmt.Sprintf("  Priority: %d ", sel.Priority), p.dim("(lower = higher priority)"))

	if len(rep.Others) > 0 {
		p.println()
		p.println(p.bold("Other detected runners:"))
		for _, o := range rep.Others {
			reason := fmt.Sprintf("(priority %d)", o.Runner.Priority)
			if o.Ignored {
				reason = "(ignored via --ignore)"
			}
			p.println("  ", p.runner(o.Runner), " (", o.Runner.DetectedFile, ") ", p.dim(reason))
		}
	}

	for _, c := range rep.Conflicts {
		p.println()
		p.println(p.color(style.Caution, style.Warning+" "+conflictLine(c.Ecosystem, detectedFiles(c.Runners))))
	}
}

// Doctor prints the project diagnosis.
func (p *Printer) Doctor(rep app.DoctorReport) {
	p.println(p.bold("Project Diagnosis"))
	p.println("  Project root: ", rep.Dir)
	p.println()

	p.println(p.bold("Detected Runners:"))
	for _, t := range rep.Tools {
		m := style.ForTool(t.Status.Installed)
		state := p.color(m.Color, "not installed")
		if t.Status.Installed {
			state = "installed"
			if t.Status.Version != "" {
				state = t.Status.Version
			}
		}
		p.println("  ", p.mark(m), " ", p.runner(t.Runner), " ", state, " ", p.dim("("+t.Runner.DetectedFile+")"))
	}
	p.println()

	p.println(p.bold("Conflict Analysis:"))
	if len(rep.Conflicts) == 0 {
		p.println("  ", p.color(style.OK, style.Check), " No lockfile conflicts detected")
	}
	for _, c := range rep.Conflicts {
		p.println("  ", p.color(style.Caution, style.Warning), " ", conflictLine(c.Ecosystem, detectedFiles(c.Runners)))
	}

	if rep.HasScripts {
		p.println()
		n := len(rep.Scripts.Scripts)
		noun := "scripts"
		if n == 1 {
			noun = "script"
		}
		p.println(p.color(style.OK, style.Check), fmt.Sprintf(" %d %s available in %s", n, noun, rep.Scripts.SourceFile))
	}
}

// ScriptNotFound prints the available scripts and the closest match after a
// failed lookup.
func (p *Printer) ScriptNotFound(err *domain.ScriptNotFoundError) {
	p.println(p.dim("Available scripts: " + strings.Join(err.Available, ", ")))
	if err.Suggestion != "" {
		p.println()
		p.println("Did you mean: ", p.color(style.Prompt, "devrun"), " ", p.bold(p.color(style.OK, err.Suggestion)))
	}
}

// RunnerNotFoundHint prints how to widen the search.
func (p *Printer) RunnerNotFoundHint() {
	p.println(p.dim("Use --levels=N to increase search depth"))
}

// DryRun prints the invocation a dry run would have started.
func (p *Printer) DryRun(inv domain.Invocation) {
	p.println(p.color(style.Prompt, style.Arrow), " ", inv.String(), " ", p.dim("(in "+inv.Dir+")"))
}

// Timing prints how long the dispatched command took.
func (p *Printer) Timing(elapsed time.Duration) {
	p.println()
	p.println(p.color(style.OK, style.Check), " Completed in ", FormatElapsed(elapsed))
}

// FormatElapsed renders a duration as seconds with two decimals, or as minutes
// and seconds with one decimal from one minute on.
func FormatElapsed(d time.Duration) string {
	secs := d.Seconds()
	if secs < 60 {
		return fmt.Sprintf("%.2fs", secs)
	}
	minutes := int(secs / 60)
	return fmt.Sprintf("%dm %.1fs", minutes, secs-float64(minutes*60))
}

func detectedFiles(runners []domain.DetectedRunner) []string {
	files := make([]string, 0, len(runners))
	for _, r := range runners {
		files = append(files, r.DetectedFile)
	}
	return files
}

func conflictLine(eco domain.Ecosystem, files []string) string {
	return fmt.Sprintf("%s ecosystem has multiple lockfiles: %s", eco, strings.Join(files, ", "))
}
