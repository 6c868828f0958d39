package color

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// RGB is a 24-bit colour. The channel bytes are the source of truth; every
// text form is derived from them.
type RGB struct {
	R, G, B uint8
}

// ParseHex decodes a colour written as six hex digits (RRGGBB). Digits are
// case-insensitive; a leading '#' or a named colour is rejected.
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, hexError(s, "must be 6 hex digits")
	}
	for i := range len(s) {
		if !isHexDigit(s[i]) {
			return RGB{}, hexError(s, fmt.Sprintf("unexpected %q at offset %d", s[i], i))
		}
	}
	var channels [3]uint8
	for i := range channels {
		b, err := parseByte(s[2*i : 2*i+2])
		if err != nil {
			return RGB{}, hexError(s, err.Error())
		}
		channels[i] = b
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is ParseHex that panics on error. Intended for fixtures.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the lowercase RRGGBB form, e.g. "7cafc2".
func (c RGB) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HSL converts the colour, see ToHSL.
func (c RGB) HSL() HSL {
	return ToHSL(c)
}

// parseByte reads hex digits into one byte. Values above 0xFF are rejected
// by the narrowing conversion.
func parseByte(digits string) (uint8, error) {
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Convert[uint8](v)
}

func isHexDigit(ch byte) bool {
	switch {
	case '0' <= ch && ch <= '9':
		return true
	case 'a' <= ch && ch <= 'f':
		return true
	case 'A' <= ch && ch <= 'F':
		return true
	default:
		return false
	}
}
