/*
Package render draws punched cards as ASCII art.

A card punched with "AB", using '#' for punched and '.' for unpunched
positions, is drawn as

	    ___
	   /AB
	12/ ##
	11| ..
	 0| ..
	 1| #.
	 2| .#
	 3| ..
	 ...
	 9| ..
	  |____

The first line is one underscore wider than the card. Rows are labelled by
their punch position.
*/
package render

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/punchcard"
	"golang.org/x/term"
)

// HoleStyle is the style AutoStyle uses for punched positions on a terminal.
var HoleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4"))

type config struct {
	hole *lipgloss.Style
}

// Option configures rendering.
type Option func(*config)

// WithStyle draws punched positions with style.
func WithStyle(style lipgloss.Style) Option {
	return func(c *config) {
		c.hole = &style
	}
}

// AutoStyle enables HoleStyle if f is a terminal.
func AutoStyle(f *os.File) Option {
	return func(c *config) {
		if IsTerminal(f) {
			style := HoleStyle
			c.hole = &style
		}
	}
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Card writes the diagram of card to w.
// If the card cannot be read back, the decode error is returned and nothing
// is written.
func Card(w io.Writer, card *punchcard.Card, opts ...Option) error {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	text, err := card.Read()
	if err != nil {
		return err
	}
	rows := card.Rows()
	width := card.Len() + 1
	bw := bufio.NewWriter(w)
	bw.WriteString("    " + strings.Repeat("_", width) + "\n")
	bw.WriteString("   /" + text + "\n")
	for i, row := range rows {
		bw.WriteString(rowPrefix(i))
		bw.WriteString(c.draw(row, card.Charset().OnChar()))
		bw.WriteByte('\n')
	}
	bw.WriteString("  |_" + strings.Repeat("_", width) + "\n")
	return bw.Flush()
}

// String returns the diagram of card.
func String(card *punchcard.Card, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Card(&b, card, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// rowPrefix is the label of row i, right-aligned to two characters, plus the
// card's left edge. The edge of row 12 is the card's cut corner.
func rowPrefix(i int) string {
	label := punchcard.RowLabels[i]
	if len(label) < 2 {
		label = " " + label
	}
	if i == 0 {
		return label + "/ "
	}
	return label + "| "
}

func (c config) draw(row []rune, on rune) string {
	if c.hole == nil {
		return string(row)
	}
	var b strings.Builder
	for _, r := range row {
		if r == on {
			b.WriteString(c.hole.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
