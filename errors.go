package punchcard

import "fmt"

// EncodeError is returned when a character has no column in a charset.
type EncodeError struct {
	Char    rune
	Charset string
	Offset  int // rune offset within the punched string, -1 for single punches
}

func (e *EncodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("charset %q does not contain %q (at position %d)", e.Charset, e.Char, e.Offset)
	}
	return fmt.Sprintf("charset %q does not contain %q", e.Charset, e.Char)
}

// DecodeError is returned when a column does not denote any character of a charset.
type DecodeError struct {
	Column  Column
	Charset string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("charset %q has no character for column %s (%#03x)",
		e.Charset, e.Column, e.Column.Hollerith())
}

// CollisionError is returned when two characters of a charset definition
// share the same column. Decoding would be ambiguous.
type CollisionError struct {
	First, Second rune
	Column        Column
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("characters %q and %q share column %s", e.First, e.Second, e.Column)
}
