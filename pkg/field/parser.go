package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-base16/pkg/color"
)

// ErrUnparsable is matched by every ParseError.
var ErrUnparsable = errors.New("field: unparsable field")

// ParseError describes where a colour specifier stopped matching.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field: cannot parse %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrUnparsable
}

type production struct {
	output   Output
	bare     bool // keyword alone selects Whole
	channels map[string]Channel
}

var rgbChannels = map[string]Channel{"r": Red, "g": Green, "b": Blue}

var productions = map[string]production{
	"hex": {output: Hex, bare: true, channels: map[string]Channel{"r": Red, "g": Green, "b": Blue, "bgr": BGR}},
	"rgb": {output: Rgb, channels: rgbChannels},
	"dec": {output: Dec, channels: rgbChannels},
	"hsl": {output: Hsl, channels: map[string]Channel{"h": Hue, "s": Saturation, "l": Luminance}},
}

// indexLen is len("base00").
const indexLen = len(color.IndexPrefix) + 2

// ParseColorField parses the colour grammar
//
//	"base" HEX HEX "-" ( "hex" ["-" (r|g|b|bgr)] | ("rgb"|"dec") "-" (r|g|b) | "hsl" "-" (h|s|l) )
//
// The whole input must match.
func ParseColorField(s string) (ColorField, error) {
	if !strings.HasPrefix(s, color.IndexPrefix) {
		return ColorField{}, &ParseError{Input: s, Reason: `expected "base"`}
	}
	if len(s) < indexLen {
		return ColorField{}, &ParseError{Input: s, Offset: len(color.IndexPrefix), Reason: "expected two hex digits"}
	}
	idx, err := color.ParseIndex(s[:indexLen])
	if err != nil {
		return ColorField{}, &ParseError{Input: s, Offset: len(color.IndexPrefix), Reason: "expected two hex digits"}
	}

	rest, ok := strings.CutPrefix(s[indexLen:], "-")
	if !ok {
		return ColorField{}, &ParseError{Input: s, Offset: indexLen, Reason: `expected "-"`}
	}
	offset := indexLen + 1

	keyword, channel, hasChannel := strings.Cut(rest, "-")
	prod, ok := productions[keyword]
	if !ok {
		return ColorField{}, &ParseError{Input: s, Offset: offset, Reason: "expected one of hex, rgb, dec, hsl"}
	}
	if !hasChannel {
		if !prod.bare {
			return ColorField{}, &ParseError{Input: s, Offset: len(s), Reason: fmt.Sprintf("%s requires a channel", keyword)}
		}
		return ColorField{Index: idx, Format: Format{Output: prod.output, Channel: Whole}}, nil
	}

	offset += len(keyword) + 1
	ch, ok := prod.channels[channel]
	if !ok {
		return ColorField{}, &ParseError{Input: s, Offset: offset, Reason: fmt.Sprintf("unknown %s channel %q", keyword, channel)}
	}
	return ColorField{Index: idx, Format: Format{Output: prod.output, Channel: ch}}, nil
}

// MustParseColorField panics when s does not match the colour grammar.
func MustParseColorField(s string) ColorField {
	f, err := ParseColorField(s)
	if err != nil {
		panic(err)
	}
	return f
}
