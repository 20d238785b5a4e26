// Package console is the line-oriented terminal boundary used by the menu:
// prompts, validate-or-retry input, acknowledgements and section headers.
// Input and output are injected so sessions can be scripted in tests.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ErrClosed indicates the input stream ended before a line was read.
var ErrClosed = errors.New("console: input closed")

// DefaultHeaderWidth is the width of the "=" rules around a header.
const DefaultHeaderWidth = 50

// clearSequence homes the cursor and clears the screen.
const clearSequence = "\x1b[H\x1b[2J"

// ColorMode controls whether styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Console reads lines from an input stream and writes prompts to an output.
type Console struct {
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
	headerWidth int
	title       lipgloss.Style
}

// Option configures a Console.
type Option func(*Console)

// WithClearScreen clears the screen before each header. It only takes effect
// when the output is a terminal.
func WithClearScreen(enabled bool) Option {
	return func(c *Console) {
		c.clearScreen = enabled && IsTerminal(c.out)
	}
}

// WithHeaderWidth sets the width of header rules.
func WithHeaderWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.headerWidth = width
		}
	}
}

// WithColor selects the colour mode for header styling.
func WithColor(mode ColorMode) Option {
	return func(c *Console) {
		c.title = titleStyle(c.out, mode)
	}
}

// New creates a Console over r and w. Styling defaults to ColorAuto.
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	c := &Console{
		in:          bufio.NewReader(r),
		out:         w,
		headerWidth: DefaultHeaderWidth,
		title:       titleStyle(w, ColorAuto),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Out returns the output writer.
func (c *Console) Out() io.Writer {
	return c.out
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// ReadLine returns the next input line without its line terminator.
// A final line without a newline is returned normally; ErrClosed is
// returned only when no input remains.
// It stops reading the source as soon as a newline arrives, so a source that
// yields one line per read, like a terminal in canonical mode, keeps later
// input for other readers such as the list pager.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrClosed
			}
		} else {
			return "", fmt.Errorf("console: reading input: %w", err)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Prompt writes text and reads one line.
func (c *Console) Prompt(text string) (string, error) {
	_, _ = io.WriteString(c.out, text)
	return c.ReadLine()
}

// PromptValid prompts until valid accepts the input, reporting message after
// every rejected attempt.
func (c *Console) PromptValid(text string, valid func(string) bool, message string) (string, error) {
	for {
		line, err := c.Prompt(text)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		c.Printf("\nError: %s\n\n", message)
	}
}

// Confirm prompts with text and reports whether the answer is "Y" or "y".
func (c *Console) Confirm(text string) (bool, error) {
	line, err := c.Prompt(text)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "Y"), nil
}

// Pause waits for the user to press Enter.
func (c *Console) Pause() error {
	_, err := c.Prompt("\nPress Enter to continue...")
	return err
}

// Header starts a new screen section titled title.
func (c *Console) Header(title string) {
	if c.clearScreen {
		_, _ = io.WriteString(c.out, clearSequence)
	}
	rule := strings.Repeat("=", c.headerWidth)
	indent := max((c.headerWidth+len(title))/2-len(title), 0)

	c.Printf("%s\n", rule)
	c.Printf("%s%s\n", strings.Repeat(" ", indent), c.title.Render(title))
	c.Printf("%s\n", rule)
}

// IsTerminal reports whether w is connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// titleStyle returns a bold style rendered for w. ColorNever, and
// ColorAuto on a non-terminal writer, produce plain text.
func titleStyle(w io.Writer, mode ColorMode) lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r.NewStyle().Bold(true)
}
