package console_test

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/devrun/internal/adapters/console"
)

func TestDetectFor(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  console.Mode
	}{
		{name: "terminal", isTTY: true, want: console.ModeInteractive},
		{name: "pipe", isTTY: false, want: console.ModePlain},
		{name: "CI=true on a terminal", isTTY: true, ci: "true", want: console.ModeCI},
		{name: "CI=1 on a pipe", isTTY: false, ci: "1", want: console.ModeCI},
		{name: "CI=false does not count", isTTY: true, ci: "false", want: console.ModeInteractive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, console.DetectFor(tt.isTTY, tt.ci))
		})
	}
}

func TestDetect_UnderTest(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, console.ModeCI, console.Detect())
}

func TestMode_Profile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, console.ModeCI.Profile()())
	assert.Equal(t, termenv.Ascii, console.ModePlain.Profile()())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, console.ModeInteractive.Profile()())
	assert.Equal(t, termenv.Ascii, console.ModeCI.Profile()())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "interactive", console.ModeInteractive.String())
	assert.Equal(t, "ci", console.ModeCI.String())
	assert.Equal(t, "plain", console.ModePlain.String())
	assert.Equal(t, "unknown", console.Mode(42).String())
}
