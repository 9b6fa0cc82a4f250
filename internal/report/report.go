// Package report models the outcome of environment checks and renders them
// as a colored, wrapped terminal report. Outcomes are collected into titled
// sections; each section aggregates the severity of its items and prints a
// glyph-decorated block.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

// Severity classifies a check outcome. Ordering matters: a higher value
// dominates when a section aggregates its items.
type Severity int

const (
	SeverityVictory Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "victory"
	}
}

// TitleGlyph returns the glyph shown inside a section heading. Warnings keep
// the check mark; only errors switch to the alarm glyph.
func (s Severity) TitleGlyph() string {
	if s == SeverityError {
		return "!"
	}
	return "✔"
}

// ItemGlyph returns the bullet for an item line. Anything short of a clean
// pass is marked with a cross.
func (s Severity) ItemGlyph() string {
	if s == SeverityVictory {
		return "•"
	}
	return "✗"
}

func (s Severity) style() *color.Color {
	switch s {
	case SeverityWarning:
		return color.New(color.FgHiYellow, color.Bold)
	case SeverityError:
		return color.New(color.FgHiRed, color.Bold)
	default:
		return color.New(color.FgHiGreen, color.Bold)
	}
}

// Item is a single check outcome: a severity paired with a human-readable
// message. Items are immutable values.
type Item struct {
	severity Severity
	message  string
}

// NewItem constructs an outcome with an explicit severity
func NewItem(severity Severity, message string) Item {
	return Item{severity: severity, message: message}
}

// Victory reports a passed check.
func Victory(message string) Item {
	return NewItem(SeverityVictory, message)
}

// Warning reports a caveat that does not block work.
func Warning(message string) Item {
	return NewItem(SeverityWarning, message)
}

// Failure reports a broken part of the environment.
func Failure(message string) Item {
	return NewItem(SeverityError, message)
}

// FromResult converts the outcome of a fallible check into an item: a nil
// error yields a victory carrying message, a non-nil error yields a failure
// carrying the error's rendering. Warnings never originate here; they are
// always constructed deliberately.
func FromResult(message string, err error) Item {
	if err != nil {
		return Failure(err.Error())
	}
	return Victory(message)
}

// Severity returns the item's classification.
func (i Item) Severity() Severity { return i.severity }

// Message returns the item's text.
func (i Item) Message() string { return i.message }

// IsWarning reports whether the outcome is a caveat
func (i Item) IsWarning() bool { return i.severity == SeverityWarning }

// IsFailure reports whether the outcome reports something broken
func (i Item) IsFailure() bool { return i.severity == SeverityError }

// Section is a named, ordered group of check outcomes.
type Section struct {
	title string
	items []Item
}

// NewSection creates an empty section with the given title.
func NewSection(title string) *Section {
	return &Section{title: title}
}

// Title returns the section heading without glyph decoration.
func (s *Section) Title() string { return s.title }

// Add appends outcomes in the order given and returns the section for
// chaining.
func (s *Section) Add(items ...Item) *Section {
	s.items = append(s.items, items...)
	return s
}

// Empty reports whether the section holds no outcomes.
func (s *Section) Empty() bool { return len(s.items) == 0 }

func (s *Section) hasFailure() bool {
	for _, item := range s.items {
		if item.IsFailure() {
			return true
		}
	}
	return false
}

func (s *Section) hasWarning() bool {
	for _, item := range s.items {
		if item.IsWarning() {
			return true
		}
	}
	return false
}

// Severity returns the aggregate severity of the section: an error anywhere
// dominates, then a warning. A section with no items is a victory.
func (s *Section) Severity() Severity {
	switch {
	case s.hasFailure():
		return SeverityError
	case s.hasWarning():
		return SeverityWarning
	default:
		return SeverityVictory
	}
}

// RenderConfig controls how a section is written out.
type RenderConfig struct {
	// Width is the column at which lines wrap. Zero or negative disables
	// wrapping.
	Width int
	// Color enables ANSI styling. When false the output is plain text
	// regardless of any global color state.
	Color bool
}

const (
	bulletIndent  = "    "
	hangingIndent = "      "
)

// Render writes the section to w: a glyph-decorated heading colored by the
// aggregate severity, then one indented line block per item. Victories print
// unstyled; warnings and failures are colored and bold. A width that does
// not clear the hanging indent disables wrapping for the whole section.
// Rendering never fails and never mutates the section.
func (s *Section) Render(w io.Writer, cfg RenderConfig) {
	severity := s.Severity()
	title := fmt.Sprintf("[%s] %s", severity.TitleGlyph(), s.title)
	width := cfg.Width
	if width <= len(hangingIndent) {
		width = 0
	}
	fmt.Fprintln(w, styled(wrap(title, width), severity, cfg))
	for _, item := range s.items {
		text := item.severity.ItemGlyph() + " " + item.message
		line := indent(wrap(text, width-len(hangingIndent)))
		if item.severity == SeverityVictory {
			fmt.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, styled(line, item.severity, cfg))
		}
	}
}

// styled colors a whole block of text. The block must already be wrapped;
// the wrapper only ever sees plain text.
func styled(text string, severity Severity, cfg RenderConfig) string {
	if !cfg.Color {
		return text
	}
	c := severity.style()
	c.EnableColor()
	return c.Sprint(text)
}

// wrap breaks text at width columns, preserving the line breaks the text
// already contains.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.WrapString(text, uint(width))
}

// indent prefixes the first line of a block with the bullet indent and every
// following line with the hanging indent, so that continuation text lines up
// under the first line's message.
func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = bulletIndent + line
		} else {
			lines[i] = hangingIndent + line
		}
	}
	return strings.Join(lines, "\n")
}
