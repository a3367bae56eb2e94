package punchcard

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// MappingReader yields charset entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type MappingReader interface {
	Next() (ch rune, col Column, err error)
}

// Charset is a bidirectional mapping between characters and card columns,
// together with the glyphs used to draw punched and unpunched positions.
//
// A Charset is immutable once loaded and may be shared by any number of cards.
type Charset struct {
	name    string
	on, off rune
	encode  map[rune]Column // e.g., 'A' => rows 12,1
	decode  map[uint16]rune // Hollerith code => character
}

// LoadCharset builds a charset from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package jsoncharset to parse concrete formats and feed this API.
//
// The decode direction is derived by inverting the entries. If two characters
// map to the same column, LoadCharset fails with a *CollisionError.
// A character appearing twice keeps its last column.
func LoadCharset(name string, on, off rune, reader MappingReader) (cs *Charset, err error) {
	cs = &Charset{
		name:   name,
		on:     on,
		off:    off,
		encode: make(map[rune]Column),
	}
	var ch rune
	var col Column
	for {
		ch, col, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cs.encode[ch] = col
	}
	if err = cs.invert(); err != nil {
		return nil, err
	}
	tracer().Infof("charset %q loaded with %d characters", name, len(cs.encode))
	return cs, nil
}

// NewCharset builds a charset from an in-memory mapping.
func NewCharset(name string, on, off rune, mapping map[rune]Column) (*Charset, error) {
	return LoadCharset(name, on, off, newMapReader(mapping))
}

// invert derives the decode map. Characters are visited in order, so that
// collision errors are reproducible.
func (cs *Charset) invert() error {
	cs.decode = make(map[uint16]rune, len(cs.encode))
	for _, ch := range cs.Chars() {
		col := cs.encode[ch]
		code := col.Hollerith()
		if other, found := cs.decode[code]; found {
			return &CollisionError{First: other, Second: ch, Column: col}
		}
		cs.decode[code] = ch
	}
	assert(len(cs.decode) == len(cs.encode), "decode map is not an inverse of encode map")
	return nil
}

// Name returns the identifier the charset was loaded with.
func (cs *Charset) Name() string { return cs.name }

// OnChar is the glyph for a punched position.
func (cs *Charset) OnChar() rune { return cs.on }

// OffChar is the glyph for an unpunched position.
func (cs *Charset) OffChar() rune { return cs.off }

// Len returns the number of characters in the charset.
func (cs *Charset) Len() int { return len(cs.encode) }

// Supports reports whether ch can be encoded.
func (cs *Charset) Supports(ch rune) bool {
	_, ok := cs.encode[ch]
	return ok
}

// Chars returns all encodable characters in ascending order.
func (cs *Charset) Chars() []rune {
	chars := make([]rune, 0, len(cs.encode))
	for ch := range cs.encode {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	return chars
}

// Encode returns the column for ch.
// If ch is not part of the charset, an *EncodeError is returned.
func (cs *Charset) Encode(ch rune) (Column, error) {
	col, ok := cs.encode[ch]
	if !ok {
		return Column{}, &EncodeError{Char: ch, Charset: cs.name, Offset: -1}
	}
	return col, nil
}

// Decode returns the character punched as col.
// If no character maps to col, a *DecodeError is returned.
func (cs *Charset) Decode(col Column) (rune, error) {
	ch, ok := cs.decode[col.Hollerith()]
	if !ok {
		return 0, &DecodeError{Column: col, Charset: cs.name}
	}
	return ch, nil
}

// Validate checks that every character of s is encodable. It returns an
// *EncodeError for the first character which is not.
func (cs *Charset) Validate(s string) error {
	for i, ch := range []rune(s) {
		if !cs.Supports(ch) {
			return &EncodeError{Char: ch, Charset: cs.name, Offset: i}
		}
	}
	return nil
}

func (cs *Charset) String() string {
	return fmt.Sprintf("Charset(%s,chars=%d,on=%q,off=%q)", cs.name, len(cs.encode), cs.on, cs.off)
}

// IsUnsupported reports whether err is caused by an unsupported character.
func IsUnsupported(err error) bool {
	var e *EncodeError
	return errors.As(err, &e)
}

// --- Mapping readers -------------------------------------------------------

// mapReader streams the entries of an in-memory mapping in character order.
type mapReader struct {
	mapping map[rune]Column
	chars   []rune
	index   int
}

func newMapReader(mapping map[rune]Column) *mapReader {
	chars := make([]rune, 0, len(mapping))
	for ch := range mapping {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	return &mapReader{mapping: mapping, chars: chars}
}

func (r *mapReader) Next() (rune, Column, error) {
	if r.index >= len(r.chars) {
		return 0, Column{}, io.EOF
	}
	ch := r.chars[r.index]
	r.index++
	return ch, r.mapping[ch], nil
}
