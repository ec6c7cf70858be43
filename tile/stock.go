package tile

import (
	"fmt"
	"strings"
)

// Bool is a two-state tile drawn as "#" (true) or "." (false).
// The zero value is false.
type Bool bool

// ParseBool parses "#" or ".".
func ParseBool(chunk string) (Bool, error) {
	switch chunk {
	case "#":
		return true, nil
	case ".":
		return false, nil
	}
	return false, fmt.Errorf("%w: bool %q", ErrInvalidTile, chunk)
}

func (b Bool) DisplayWidth() int { return 1 }

func (b Bool) String() string {
	if b {
		return "#"
	}
	return "."
}

// Not returns the inverted tile.
func (b Bool) Not() Bool { return !b }

// RGB is warm white when set and black otherwise.
func (b Bool) RGB() [3]uint8 {
	if b {
		return [3]uint8{253, 244, 220}
	}
	return [3]uint8{0, 0, 0}
}

// Digit is a single decimal digit, 0 through 9.
type Digit uint8

// NewDigit validates v.
func NewDigit(v uint8) (Digit, error) {
	if v > 9 {
		return 0, fmt.Errorf("%w: digit %d out of range", ErrInvalidTile, v)
	}
	return Digit(v), nil
}

// ParseDigit parses a one-character chunk "0".."9".
func ParseDigit(chunk string) (Digit, error) {
	if len(chunk) != 1 || chunk[0] < '0' || chunk[0] > '9' {
		return 0, fmt.Errorf("%w: digit %q", ErrInvalidTile, chunk)
	}
	return Digit(chunk[0] - '0'), nil
}

func (d Digit) DisplayWidth() int { return 1 }

func (d Digit) String() string { return string(rune('0' + d)) }

// Value returns the digit as a plain integer.
func (d Digit) Value() uint8 { return uint8(d) }

// RGB is a grey ramp from black (0) to white (9).
func (d Digit) RGB() [3]uint8 {
	const step = 255 / 9
	v := uint8(d) * step
	return [3]uint8{v, v, v}
}

// TwoDigits is a two-digit decimal number, 0 through 99, drawn as " %02d".
type TwoDigits uint8

// NewTwoDigits validates v.
func NewTwoDigits(v uint8) (TwoDigits, error) {
	if v > 99 {
		return 0, fmt.Errorf("%w: two-digit value %d out of range", ErrInvalidTile, v)
	}
	return TwoDigits(v), nil
}

// ParseTwoDigits parses a field of one or two leading spaces followed by
// one or two digits, such as " 07", "  7" or " 42".
func ParseTwoDigits(chunk string) (TwoDigits, error) {
	digits := strings.TrimLeft(chunk, " ")
	pad := len(chunk) - len(digits)
	if pad < 1 || pad > 2 || len(digits) < 1 || len(digits) > 2 {
		return 0, fmt.Errorf("%w: two digits %q", ErrInvalidTile, chunk)
	}
	var v uint8
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: two digits %q", ErrInvalidTile, chunk)
		}
		v = v*10 + (c - '0')
	}
	return TwoDigits(v), nil
}

func (t TwoDigits) DisplayWidth() int { return 3 }

func (t TwoDigits) String() string { return fmt.Sprintf(" %02d", uint8(t)) }

// Value returns the number as a plain integer.
func (t TwoDigits) Value() uint8 { return uint8(t) }

// RGB is a grey ramp from black (0) to white (99).
func (t TwoDigits) RGB() [3]uint8 {
	const step = 255 / 99
	v := uint8(t) * step
	return [3]uint8{v, v, v}
}
