package color

import (
	"fmt"
	"strings"
)

// IndexPrefix starts the text form of every Index.
const IndexPrefix = "base"

// Index is a palette slot, written as "base" plus two hex digits (base00 to
// baseFF). Parsing is case-insensitive, String always uses uppercase digits.
type Index uint8

// ParseIndex decodes strings such as "base0A" or "base0a".
func ParseIndex(s string) (Index, error) {
	digits, ok := strings.CutPrefix(s, IndexPrefix)
	if !ok {
		return 0, indexError(s, `should start with "base"`)
	}
	if len(digits) != 2 || !isHexDigit(digits[0]) || !isHexDigit(digits[1]) {
		return 0, indexError(s, "expected two hex digits between 00 and FF")
	}
	b, err := parseByte(digits)
	if err != nil {
		return 0, indexError(s, err.Error())
	}
	return Index(b), nil
}

// MustParseIndex is ParseIndex that panics on error.
func MustParseIndex(s string) Index {
	idx, err := ParseIndex(s)
	if err != nil {
		panic(err)
	}
	return idx
}

func (i Index) String() string {
	return fmt.Sprintf("%s%02X", IndexPrefix, uint8(i))
}

// MarshalText implements encoding.TextMarshaler.
func (i Index) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Index) UnmarshalText(text []byte) error {
	parsed, err := ParseIndex(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
