package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionSeverity(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  Severity
	}{
		{
			name: "no items is a victory",
			want: SeverityVictory,
		},
		{
			name:  "all victories",
			items: []Item{Victory("a"), Victory("b")},
			want:  SeverityVictory,
		},
		{
			name:  "warning dominates victory",
			items: []Item{Victory("a"), Warning("b"), Victory("c")},
			want:  SeverityWarning,
		},
		{
			name:  "error dominates warning",
			items: []Item{Warning("a"), Failure("b")},
			want:  SeverityError,
		},
		{
			name:  "error dominates regardless of position",
			items: []Item{Failure("a"), Victory("b"), Warning("c")},
			want:  SeverityError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSection("test").Add(tt.items...)
			assert.Equal(t, tt.want, s.Severity())
		})
	}
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, "✔", SeverityVictory.TitleGlyph())
	assert.Equal(t, "✔", SeverityWarning.TitleGlyph())
	assert.Equal(t, "!", SeverityError.TitleGlyph())

	assert.Equal(t, "•", SeverityVictory.ItemGlyph())
	assert.Equal(t, "✗", SeverityWarning.ItemGlyph())
	assert.Equal(t, "✗", SeverityError.ItemGlyph())
}

func TestFromResult(t *testing.T) {
	ok := FromResult("tool v1 found", nil)
	assert.Equal(t, SeverityVictory, ok.Severity())
	assert.Equal(t, "tool v1 found", ok.Message())
	assert.False(t, ok.IsWarning())
	assert.False(t, ok.IsFailure())

	bad := FromResult("ignored", errors.New("tool exploded"))
	assert.Equal(t, SeverityError, bad.Severity())
	assert.Equal(t, "tool exploded", bad.Message())
	assert.True(t, bad.IsFailure())
}

func TestNewItem(t *testing.T) {
	item := NewItem(SeverityWarning, "careful now")
	assert.True(t, item.IsWarning())
	assert.False(t, item.IsFailure())
	assert.Equal(t, Warning("careful now"), item)
}

func TestSectionAddKeepsOrder(t *testing.T) {
	s := NewSection("order").
		Add(Victory("first")).
		Add(Warning("second"), Victory("third"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{})
	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[1]), "first")
	assert.Contains(t, string(lines[2]), "second")
	assert.Contains(t, string(lines[3]), "third")
}

func TestRenderPlain(t *testing.T) {
	s := NewSection("Rust toolchain").
		Add(Victory("rustc 1.49.0 found")).
		Add(Warning("this warning is long enough to wrap somewhere"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{Width: 40})

	want := "[✔] Rust toolchain\n" +
		"    • rustc 1.49.0 found\n" +
		"    ✗ this warning is long enough to\n" +
		"      wrap somewhere\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderErrorTitleGlyph(t *testing.T) {
	s := NewSection("Apple developer tools").Add(Failure("bad"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{})
	assert.Equal(t, "[!] Apple developer tools\n    ✗ bad\n", buf.String())
}

func TestRenderMultiLineMessage(t *testing.T) {
	s := NewSection("t").Add(Failure("line one\nline two"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{})
	assert.Equal(t, "[!] t\n    ✗ line one\n      line two\n", buf.String())
}

func TestRenderEmptySection(t *testing.T) {
	s := NewSection("Project")
	assert.True(t, s.Empty())

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{})
	assert.Equal(t, "[✔] Project\n", buf.String())
}

func TestRenderNarrowWidthDisablesWrapping(t *testing.T) {
	s := NewSection("t").Add(Victory("a message that would never fit in four columns"))

	// Widths at or below the hanging indent render everything unwrapped.
	want := "[✔] t\n    • a message that would never fit in four columns\n"
	for _, width := range []int{len(hangingIndent), 4, 0, -1} {
		var buf bytes.Buffer
		s.Render(&buf, RenderConfig{Width: width})
		assert.Equal(t, want, buf.String(), "width %d", width)
	}
}

func TestRenderColor(t *testing.T) {
	s := NewSection("Apple developer tools").Add(
		Victory("macOS v11.6"),
		Failure("bad"),
	)

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{Color: true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	// Red bold title because the section aggregates to an error.
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[91;1m[!] Apple developer tools"))
	// Victories stay plain even in color mode.
	assert.Equal(t, "    • macOS v11.6", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "\x1b[91;1m    ✗ bad"))
}

func TestRenderWarningSectionMixed(t *testing.T) {
	s := NewSection("Xcode").Add(
		Victory("Xcode 14.3 found"),
		Warning("Command Line Tools path not set"),
	)
	assert.Equal(t, SeverityWarning, s.Severity())

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{Color: true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[93;1m[✔] Xcode"))
	assert.Equal(t, "    • Xcode 14.3 found", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "\x1b[93;1m    ✗ Command Line Tools path not set"))
}

func TestRenderColorWarning(t *testing.T) {
	s := NewSection("t").Add(Warning("heads up"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{Color: true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b[93;1m[✔] t"))
	assert.True(t, strings.HasPrefix(lines[1], "\x1b[93;1m    ✗ heads up"))
}

func TestRenderNoColorHasNoEscapes(t *testing.T) {
	s := NewSection("t").Add(Warning("heads up"), Failure("down"))

	var buf bytes.Buffer
	s.Render(&buf, RenderConfig{Width: 80})
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRenderIdempotent(t *testing.T) {
	s := NewSection("t").Add(Warning("same every time"))
	cfg := RenderConfig{Width: 30, Color: true}

	var first, second bytes.Buffer
	s.Render(&first, cfg)
	s.Render(&second, cfg)
	assert.Equal(t, first.String(), second.String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "victory", SeverityVictory.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
