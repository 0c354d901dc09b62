package presenter

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New()
	assert.NotNil(t, p)
	assert.Equal(t, os.Stdout, p.output)
	assert.Equal(t, os.Stderr, p.errorOutput)
	assert.False(t, p.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillregColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLREG_COLOR always", "", "always", ColorAlways},
		{"SKILLREG_COLOR force", "", "force", ColorAlways},
		{"SKILLREG_COLOR never", "", "never", ColorNever},
		{"SKILLREG_COLOR off", "", "off", ColorNever},
		{"SKILLREG_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "rainbow", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("SKILLREG_COLOR", tt.skillregColor)
			if tt.noColor == "" {
				os.Unsetenv("NO_COLOR")
			}

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	p := NewWithOptions(nil, &errorOutput, ColorNever)

	p.Error(errors.New("skill body not found"), "show")
	assert.Equal(t, "[ERROR] show: skill body not found\n", errorOutput.String())

	errorOutput.Reset()
	p.Error(errors.New("boom"), "")
	assert.Equal(t, "[ERROR] boom\n", errorOutput.String())

	errorOutput.Reset()
	p.Error(nil, "context")
	assert.Empty(t, errorOutput.String())

	errorOutput.Reset()
	p.SetQuiet(true)
	p.Error(errors.New("still shown"), "")
	assert.Contains(t, errorOutput.String(), "still shown")
}

func TestMessages(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)

	p.Success("created")
	p.Warning("careful")
	p.Info("plain")
	p.Field("Kind", "evaluator")

	assert.Equal(t, "✓ created\n⚠ careful\nplain\nKind: evaluator\n", output.String())
}

func TestQuietMode(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("a")
	p.Warning("b")
	p.Info("c")
	p.Section("d")
	p.Field("e", "f")
	p.Separator()
	assert.Empty(t, output.String())

	p.SetQuiet(false)
	assert.False(t, p.IsQuiet())
}

func TestSection(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)

	p.Section("Evaluators")

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Evaluators", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Evaluators")), lines[1])
}

func TestSeparator(t *testing.T) {
	var output bytes.Buffer
	p := NewWithOptions(&output, nil, ColorNever)

	p.Separator()
	assert.Equal(t, strings.Repeat("-", 60)+"\n", output.String())
}

func TestColorModeConfiguration(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorNever)
	assert.True(t, color.NoColor)

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorAlways)
	assert.False(t, color.NoColor)
}

func TestGlobalFunctions(t *testing.T) {
	original := defaultPresenter
	defer SetDefault(original)

	var output, errorOutput bytes.Buffer
	SetDefault(NewWithOptions(&output, &errorOutput, ColorNever))

	Error(errors.New("test error"), "ctx")
	assert.Contains(t, errorOutput.String(), "[ERROR] ctx: test error")

	Success("done")
	Warning("warn")
	Info("info")
	Section("Title")
	Field("Name", "general")
	Separator()

	out := output.String()
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "⚠ warn")
	assert.Contains(t, out, "info")
	assert.Contains(t, out, "Title\n-----")
	assert.Contains(t, out, "Name: general")

	SetQuiet(true)
	assert.True(t, IsQuiet())
	output.Reset()
	Info("hidden")
	assert.Empty(t, output.String())
	SetQuiet(false)
}
