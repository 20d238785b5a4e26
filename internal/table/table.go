// Package table renders contacts as a pipe-bordered text table whose column
// widths follow the data being shown.
package table

import (
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/contactbook/internal/contact"
)

// Padding is added to every column after the widest value is found.
const Padding = 4

// Widths holds one width per contact.Field, in column order.
type Widths [5]int

// Total returns the width of a full row including borders and separators.
func (w Widths) Total() int {
	total := 0
	for _, cw := range w {
		total += cw
	}
	// "| " + cells joined by " | " + " |"
	return total + 3*(len(w)-1) + 4
}

// Cell returns the text shown for field f of c. The phone column always
// shows the display form. Tabs and line breaks become single spaces so every
// cell occupies exactly its measured width.
func Cell(c contact.Contact, f contact.Field) string {
	if f == contact.FieldPhone {
		return contact.FormatPhone(c.Phone)
	}
	return strings.Map(flattenSpace, c.Get(f))
}

func flattenSpace(r rune) rune {
	if r != ' ' && unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// ComputeWidths sizes each column to its header label, its widest cell and,
// for the phone column, the formatted phone width, then adds Padding.
func ComputeWidths(contacts []contact.Contact) Widths {
	var w Widths
	for i, f := range contact.Fields {
		w[i] = len(f.Label())
		if f == contact.FieldPhone {
			w[i] = max(w[i], contact.PhoneDisplayWidth)
		}
		for _, c := range contacts {
			w[i] = max(w[i], lipgloss.Width(Cell(c, f)))
		}
		w[i] += Padding
	}
	return w
}

// Render writes the table for contacts to w.
func Render(w io.Writer, contacts []contact.Contact) error {
	_, err := io.WriteString(w, String(contacts))
	return err
}

// String returns the table for contacts: a separator, the header row, a
// separator, one row per contact and a closing separator.
func String(contacts []contact.Contact) string {
	widths := ComputeWidths(contacts)
	sep := strings.Repeat("-", widths.Total())

	var b strings.Builder
	b.WriteString(sep + "\n")

	header := make([]string, len(contact.Fields))
	for i, f := range contact.Fields {
		header[i] = f.Label()
	}
	writeRow(&b, widths, header)
	b.WriteString(sep + "\n")

	cells := make([]string, len(contact.Fields))
	for _, c := range contacts {
		for i, f := range contact.Fields {
			cells[i] = Cell(c, f)
		}
		writeRow(&b, widths, cells)
	}
	b.WriteString(sep + "\n")
	return b.String()
}

func writeRow(b *strings.Builder, widths Widths, cells []string) {
	b.WriteString("| ")
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(pad(cell, widths[i]))
	}
	b.WriteString(" |\n")
}

// pad left-aligns s in a field of width cells.
func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
