package punchcard

import (
	"errors"
	"strings"
)

// Card is a sequence of columns punched against a single charset.
//
// Columns are only ever appended. A card is not safe for concurrent punching;
// reading from a card does not modify it.
type Card struct {
	charset *Charset
	columns []Column
}

// NewCard creates an empty card bound to cs.
func NewCard(cs *Charset) *Card {
	assert(cs != nil, "card needs a charset")
	return &Card{charset: cs}
}

// Punched creates a card for cs and punches s onto it.
// On error the partially punched card is returned together with the error.
func Punched(cs *Charset, s string) (*Card, error) {
	card := NewCard(cs)
	err := card.PunchString(s)
	return card, err
}

// Charset returns the charset the card is punched with.
func (card *Card) Charset() *Charset { return card.charset }

// Len returns the number of punched columns.
func (card *Card) Len() int { return len(card.columns) }

// Empty reports whether nothing has been punched yet.
func (card *Card) Empty() bool { return len(card.columns) == 0 }

// Column returns the i-th punched column.
func (card *Card) Column(i int) Column { return card.columns[i] }

// Columns returns a copy of the punched columns.
func (card *Card) Columns() []Column {
	cols := make([]Column, len(card.columns))
	copy(cols, card.columns)
	return cols
}

// Punch appends the column for ch. If ch is not part of the card's charset,
// an *EncodeError is returned and the card is left unchanged.
func (card *Card) Punch(ch rune) error {
	col, err := card.charset.Encode(ch)
	if err != nil {
		return err
	}
	card.columns = append(card.columns, col)
	return nil
}

// PunchString punches the characters of s from left to right.
//
// Punching stops at the first character not contained in the charset. All
// columns punched up to that character stay on the card; the returned
// *EncodeError holds the rune offset of the offending character within s.
func (card *Card) PunchString(s string) error {
	i := 0
	for _, ch := range s {
		if err := card.Punch(ch); err != nil {
			var encErr *EncodeError
			if errors.As(err, &encErr) {
				encErr.Offset = i
			}
			tracer().Debugf("punching stopped after %d characters: %v", i, err)
			return err
		}
		i++
	}
	return nil
}

// Read decodes all columns and returns the resulting text.
// The first column without a character yields a *DecodeError.
func (card *Card) Read() (string, error) {
	var b strings.Builder
	b.Grow(len(card.columns))
	for _, col := range card.columns {
		ch, err := card.charset.Decode(col)
		if err != nil {
			return "", err
		}
		b.WriteRune(ch)
	}
	return b.String(), nil
}

// Rows projects the card onto its twelve punch positions.
//
// Row 0 is position 12, row 1 is position 11, rows 2…11 are positions 0…9.
// Every row holds one glyph per column: the charset's on-glyph where the
// column is punched at that position, the off-glyph otherwise.
func (card *Card) Rows() [][]rune {
	on, off := card.charset.OnChar(), card.charset.OffChar()
	rows := make([][]rune, Rows)
	for i := 0; i < Rows; i++ {
		row := make([]rune, len(card.columns))
		for j, col := range card.columns {
			if col.Punched(i) {
				row[j] = on
			} else {
				row[j] = off
			}
		}
		rows[i] = row
	}
	return rows
}
