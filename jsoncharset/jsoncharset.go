/*
Package jsoncharset reads charset definitions in JSON format.

A definition has exactly three fields:

	{
	  "on_char":  "O",
	  "off_char": " ",
	  "charmap": {
	    "A": [1,0,0,1,0,0,0,0,0,0,0,0],
	    "B": [1,0,0,0,1,0,0,0,0,0,0,0]
	  }
	}

on_char and off_char are the glyphs for punched and unpunched positions.
charmap maps single characters to 12 punch positions, ordered 12, 11, 0, 1, …, 9.
*/
package jsoncharset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/punchcard"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'punchcard'
func tracer() tracing.Trace {
	return tracing.Select("punchcard")
}

// Definition is a parsed, validated charset definition.
type Definition struct {
	On      rune
	Off     rune
	Charmap map[rune]punchcard.Column
}

type rawDefinition struct {
	OnChar  *string          `json:"on_char"`
	OffChar *string          `json:"off_char"`
	Charmap map[string][]int `json:"charmap"`
}

// Parse decodes and validates a JSON charset definition.
func Parse(data []byte) (*Definition, error) {
	var raw rawDefinition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed charset definition: %w", err)
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, errors.New("malformed charset definition: unexpected data after definition")
	}
	if raw.OnChar == nil || raw.OffChar == nil || raw.Charmap == nil {
		return nil, errors.New("charset definition needs on_char, off_char and charmap")
	}
	def := &Definition{Charmap: make(map[rune]punchcard.Column, len(raw.Charmap))}
	var err error
	if def.On, err = singleRune("on_char", *raw.OnChar); err != nil {
		return nil, err
	}
	if def.Off, err = singleRune("off_char", *raw.OffChar); err != nil {
		return nil, err
	}
	for key, positions := range raw.Charmap {
		ch, err := singleRune("charmap key", key)
		if err != nil {
			return nil, err
		}
		col, err := punchcard.ColumnFromSlice(positions)
		if err != nil {
			return nil, fmt.Errorf("charmap entry %q: %w", key, err)
		}
		def.Charmap[ch] = col
	}
	return def, nil
}

func singleRune(field, s string) (rune, error) {
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, is %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Reader streams the entries of a definition in character order.
type Reader struct {
	def   *Definition
	chars []rune
	index int
}

// Reader returns a punchcard.MappingReader over the definition's charmap.
func (def *Definition) Reader() *Reader {
	chars := make([]rune, 0, len(def.Charmap))
	for ch := range def.Charmap {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	return &Reader{def: def, chars: chars}
}

// Next returns the next entry as (character, column).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (rune, punchcard.Column, error) {
	if r.index >= len(r.chars) {
		return 0, punchcard.Column{}, io.EOF
	}
	ch := r.chars[r.index]
	r.index++
	return ch, r.def.Charmap[ch], nil
}

// Load reads a JSON charset definition and returns a ready-to-use charset.
//
// Example usage:
//
//	f, _ := os.Open("charsets/example.json")
//	defer f.Close()
//
//	cs, err := jsoncharset.Load("example", f)
func Load(name string, reader io.Reader) (*punchcard.Charset, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("charset %s: %w", name, err)
	}
	tracer().Debugf("charset %s: on=%q off=%q entries=%d", name, def.On, def.Off, len(def.Charmap))
	cs, err := punchcard.LoadCharset(name, def.On, def.Off, def.Reader())
	if err != nil {
		return nil, fmt.Errorf("charset %s: %w", name, err)
	}
	return cs, nil
}

// LoadFile loads a charset from a JSON file. The charset is named after the
// file name without extension.
func LoadFile(path string) (*punchcard.Charset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(Name(path), f)
}

// Name derives a charset name from a definition file path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
