/*
Package punchcard encodes text into punched-card columns and projects the
result onto the twelve rows of a card.

A Charset maps characters to 12-position columns (rows 12, 11, 0, 1, …, 9,
top to bottom) and back. A Card is an append-only sequence of columns punched
against one Charset. Cards can be read back to text and projected into rows
of hole/no-hole glyphs, which is all a renderer needs to draw the card.

Charset definitions are format-agnostic. The base package consumes mappings
through a MappingReader; concrete formats live in adapter packages such as
package jsoncharset. A built-in IBM 029 charset is provided by package ibm029.

A column position counts as punched if its value is non-zero.

Further Reading

	https://en.wikipedia.org/wiki/Punched_card#IBM_80-column_format_and_character_codes
	http://www.columbia.edu/cu/computinghistory/029.html

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package punchcard

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'punchcard'
func tracer() tracing.Trace {
	return tracing.Select("punchcard")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
