/*
Package ibm029 provides the built-in default charset: the character code of
the IBM 029 keypunch for the printable ASCII range from space to underscore.

Punched positions are drawn as 'O', unpunched positions as blanks.
*/
package ibm029

import (
	"sync"

	"github.com/npillmayer/punchcard"
)

// Name is the name of the built-in charset.
const Name = "ibm029"

// Glyphs for punched and unpunched positions.
const (
	OnChar  = 'O'
	OffChar = ' '
)

// hollerith holds the 029 card code of each character.
var hollerith = map[rune]uint16{
	' ':  0x000, // blank
	'!':  0x482, // 11-2-8
	'"':  0x006, // 7-8
	'#':  0x042, // 3-8
	'$':  0x442, // 11-3-8
	'%':  0x222, // 0-4-8
	'&':  0x800, // 12
	'\'': 0x012, // 5-8
	'(':  0x812, // 12-5-8
	')':  0x412, // 11-5-8
	'*':  0x422, // 11-4-8
	'+':  0x80A, // 12-6-8
	',':  0x242, // 0-3-8
	'-':  0x400, // 11
	'.':  0x842, // 12-3-8
	'/':  0x300, // 0-1
	'0':  0x200, // 0
	'1':  0x100, // 1
	'2':  0x080, // 2
	'3':  0x040, // 3
	'4':  0x020, // 4
	'5':  0x010, // 5
	'6':  0x008, // 6
	'7':  0x004, // 7
	'8':  0x002, // 8
	'9':  0x001, // 9
	':':  0x082, // 2-8
	';':  0x40A, // 11-6-8
	'<':  0x822, // 12-4-8
	'=':  0x00A, // 6-8
	'>':  0x20A, // 0-6-8
	'?':  0x206, // 0-7-8
	'@':  0x022, // 4-8
	'A':  0x900, // 12-1
	'B':  0x880, // 12-2
	'C':  0x840, // 12-3
	'D':  0x820, // 12-4
	'E':  0x810, // 12-5
	'F':  0x808, // 12-6
	'G':  0x804, // 12-7
	'H':  0x802, // 12-8
	'I':  0x801, // 12-9
	'J':  0x500, // 11-1
	'K':  0x480, // 11-2
	'L':  0x440, // 11-3
	'M':  0x420, // 11-4
	'N':  0x410, // 11-5
	'O':  0x408, // 11-6
	'P':  0x404, // 11-7
	'Q':  0x402, // 11-8
	'R':  0x401, // 11-9
	'S':  0x280, // 0-2
	'T':  0x240, // 0-3
	'U':  0x220, // 0-4
	'V':  0x210, // 0-5
	'W':  0x208, // 0-6
	'X':  0x204, // 0-7
	'Y':  0x202, // 0-8
	'Z':  0x201, // 0-9
	'[':  0xE82, // 12-11-0-2-8
	'\\': 0x282, // 0-2-8
	']':  0xE42, // 12-11-0-3-8
	'^':  0x406, // 11-7-8
	'_':  0x212, // 0-5-8
}

var (
	charset     *punchcard.Charset
	charsetOnce sync.Once
)

// Charset returns the IBM 029 charset. It is built once and shared.
func Charset() *punchcard.Charset {
	charsetOnce.Do(func() {
		mapping := make(map[rune]punchcard.Column, len(hollerith))
		for ch, code := range hollerith {
			mapping[ch] = punchcard.FromHollerith(code)
		}
		var err error
		charset, err = punchcard.NewCharset(Name, OnChar, OffChar, mapping)
		if err != nil {
			panic("ibm029: invalid built-in table: " + err.Error())
		}
	})
	return charset
}

// Hollerith returns the 12-bit card code for ch.
func Hollerith(ch rune) (uint16, bool) {
	code, ok := hollerith[ch]
	return code, ok
}
