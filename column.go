package punchcard

import (
	"fmt"
	"strings"
)

// Rows is the number of punch positions of a card column.
const Rows = 12

// Column holds one card column, indexed by punch position.
// Index 0 is row 12, index 1 is row 11, indices 2…11 are rows 0…9.
// A position is punched if its value is non-zero.
type Column [Rows]int

// RowLabels are the printed names of the punch positions, top to bottom.
var RowLabels = [Rows]string{"12", "11", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// holeMask is the Hollerith bit of punch position i.
func holeMask(i int) uint16 {
	return 1 << (Rows - 1 - i)
}

// Punched reports whether position i of the column is punched.
func (col Column) Punched(i int) bool {
	assert(i >= 0 && i < Rows, "column position out of range")
	return col[i] != 0
}

// Blank reports whether no position of the column is punched.
func (col Column) Blank() bool {
	return col.Hollerith() == 0
}

// Hollerith packs the column into a 12-bit Hollerith code.
// Bit 11 is row 12, bit 10 is row 11, bit 9 is row 0 and bits 8…0 are rows 1…9.
//
// Example:
//
//	'A' = rows 12 and 1 => 0x900.
func (col Column) Hollerith() uint16 {
	var code uint16
	for i, val := range col {
		if val != 0 {
			code |= holeMask(i)
		}
	}
	return code
}

// Normalized returns the column with every punched position set to 1.
func (col Column) Normalized() Column {
	return FromHollerith(col.Hollerith())
}

// FromHollerith unpacks a 12-bit Hollerith code into a column.
func FromHollerith(code uint16) Column {
	var col Column
	for i := 0; i < Rows; i++ {
		if code&holeMask(i) != 0 {
			col[i] = 1
		}
	}
	return col
}

// ColumnFromSlice converts a position vector into a Column.
// The vector must have exactly 12 entries.
func ColumnFromSlice(positions []int) (Column, error) {
	var col Column
	if len(positions) != Rows {
		return col, fmt.Errorf("column must have %d positions, has %d", Rows, len(positions))
	}
	copy(col[:], positions)
	return col, nil
}

// String returns the punched rows in card notation, e.g. "12-1" for 'A'.
// A blank column is "blank".
func (col Column) String() string {
	var rows []string
	for i := 0; i < Rows; i++ {
		if col.Punched(i) {
			rows = append(rows, RowLabels[i])
		}
	}
	if len(rows) == 0 {
		return "blank"
	}
	return strings.Join(rows, "-")
}
