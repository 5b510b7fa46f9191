// Package output handles CLI rendering with optional styling and
// machine-readable modes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// Renderer writes styled output to a command's streams.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	Styles Styles
}

// NewRenderer creates a Renderer for the given streams and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		Styles: defaultStyles(),
	}
}

// Writer returns the standard output stream.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the error output stream.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Println writes a line to standard output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Header writes a styled section header.
func (r *Renderer) Header(text string) {
	fmt.Fprintln(r.out, r.Styles.Header.Render(text))
}

// Success writes a styled success line.
func (r *Renderer) Success(text string) {
	fmt.Fprintln(r.out, r.Styles.Success.Render(text))
}

// Error writes a styled error line to the error stream.
func (r *Renderer) Error(text string) {
	fmt.Fprintln(r.errOut, r.Styles.Error.Render(text))
}

// Warning writes a styled warning line.
func (r *Renderer) Warning(text string) {
	fmt.Fprintln(r.out, r.Styles.Warning.Render(text))
}

// Muted writes a styled low-emphasis line.
func (r *Renderer) Muted(text string) {
	fmt.Fprintln(r.out, r.Styles.Muted.Render(text))
}

// JSON writes a value as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Default returns a renderer on the process streams.
func Default() *Renderer {
	return NewRenderer(os.Stdout, os.Stderr, ModeAuto)
}
