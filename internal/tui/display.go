// Package tui shows contact tables either as plain text or, on a terminal,
// in a scrollable Bubble Tea pager.
package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/contactbook/internal/console"
)

// Viewer presents a titled block of text to the user.
type Viewer interface {
	// View shows content. paged reports whether the user already dismissed
	// it inside a pager; when false the caller should wait for the user.
	View(title, content string) (paged bool, err error)
}

// Verify at compile time that both viewers implement Viewer.
var (
	_ Viewer = (*PlainViewer)(nil)
	_ Viewer = (*PagerViewer)(nil)
)

// ViewerOptions configures viewer creation.
type ViewerOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	Input      io.Reader // Key input for the pager (default: os.Stdin).
	ForcePlain bool      // Force plain text even if TTY.
}

// NewViewer returns a pager when the writer is a TTY, or a plain text viewer
// otherwise. ForcePlain overrides TTY detection.
//
// The pager reads Input directly, not through the console's line buffer.
// A terminal in canonical mode hands the console one line per read, so the
// console never holds keystrokes typed after the menu choice that opened
// the pager.
func NewViewer(opts ViewerOptions) Viewer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}

	if opts.ForcePlain || !console.IsTerminal(opts.Writer) {
		return &PlainViewer{w: opts.Writer}
	}
	pv := &PagerViewer{w: opts.Writer, in: opts.Input}
	pv.run = pv.runProgram
	return pv
}

// PlainViewer writes content straight to its writer. The title is left to
// the caller's own section header.
type PlainViewer struct {
	w io.Writer
}

// View writes content unchanged. It never pages.
func (v *PlainViewer) View(_, content string) (bool, error) {
	_, err := io.WriteString(v.w, content)
	return false, err
}

// PagerViewer shows content in a full-screen pager until the user leaves it.
// Falls back to plain output if the Bubble Tea program fails, and then
// reports the content as not paged.
type PagerViewer struct {
	w   io.Writer
	in  io.Reader
	run func(m tea.Model) error
}

// View runs the pager and blocks until the user quits it.
func (v *PagerViewer) View(title, content string) (bool, error) {
	run := v.run
	if run == nil {
		run = v.runProgram
	}
	err := run(NewModel(title, content))
	if err == nil {
		return true, nil
	}

	plain := &PlainViewer{w: v.w}
	if _, perr := plain.View(title, content); perr != nil {
		return false, fmt.Errorf("tui: pager failed (%v), plain output: %w", err, perr)
	}
	return false, nil
}

func (v *PagerViewer) runProgram(m tea.Model) error {
	p := tea.NewProgram(m,
		tea.WithInput(v.in),
		tea.WithOutput(v.w),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
