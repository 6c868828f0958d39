package field

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/goliatone/go-base16/pkg/color"
)

// Output selects how a colour is written.
type Output uint8

const (
	Hex Output = iota // lowercase hex digits
	Rgb               // integer channel value, 0-255
	Dec               // channel value / 255, two decimals
	Hsl               // hue degrees or saturation/luminance fraction
)

var outputNames = [...]string{
	Hex: "hex",
	Rgb: "rgb",
	Dec: "dec",
	Hsl: "hsl",
}

func (o Output) String() string {
	if int(o) < len(outputNames) {
		return outputNames[o]
	}
	return "output(" + strconv.Itoa(int(o)) + ")"
}

// Channel selects which part of the colour an Output renders.
type Channel uint8

const (
	Whole Channel = iota // red, green, blue concatenated
	Red
	Green
	Blue
	BGR // blue, green, red concatenated
	Hue
	Saturation
	Luminance
)

var channelNames = [...]string{
	Whole:      "",
	Red:        "r",
	Green:      "g",
	Blue:       "b",
	BGR:        "bgr",
	Hue:        "h",
	Saturation: "s",
	Luminance:  "l",
}

func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "channel(" + strconv.Itoa(int(c)) + ")"
}

// Format is one (output, channel) pair. The zero value is hex of the whole
// colour. Formats are comparable and can be used as map keys.
type Format struct {
	Output  Output
	Channel Channel
}

// Supported reports whether f is one of the pairs the field grammar can
// produce. Other pairs are valid values but render as an empty string.
func (f Format) Supported() bool {
	switch f.Output {
	case Hex:
		switch f.Channel {
		case Whole, Red, Green, Blue, BGR:
			return true
		}
	case Rgb, Dec:
		switch f.Channel {
		case Red, Green, Blue:
			return true
		}
	case Hsl:
		switch f.Channel {
		case Hue, Saturation, Luminance:
			return true
		}
	}
	return false
}

// String returns the format part of a field specifier, e.g. "hex-bgr".
func (f Format) String() string {
	if f.Channel == Whole {
		return f.Output.String()
	}
	var b strings.Builder
	b.WriteString(f.Output.String())
	b.WriteByte('-')
	b.WriteString(f.Channel.String())
	return b.String()
}

// Compare orders formats by output then channel.
func (f Format) Compare(other Format) int {
	if c := cmp.Compare(f.Output, other.Output); c != 0 {
		return c
	}
	return cmp.Compare(f.Channel, other.Channel)
}

// Render writes c in this format. Unsupported pairs yield "".
func (f Format) Render(c color.RGB) string {
	switch f.Output {
	case Hex:
		switch f.Channel {
		case Whole:
			return c.String()
		case Red:
			return hexByte(c.R)
		case Green:
			return hexByte(c.G)
		case Blue:
			return hexByte(c.B)
		case BGR:
			return hexByte(c.B) + hexByte(c.G) + hexByte(c.R)
		}
	case Rgb:
		if v, ok := channelValue(c, f.Channel); ok {
			return strconv.Itoa(int(v))
		}
	case Dec:
		if v, ok := channelValue(c, f.Channel); ok {
			return fixed2(float64(v) / 255.0)
		}
	case Hsl:
		switch f.Channel {
		case Hue:
			return fixed2(c.HSL().Hue)
		case Saturation:
			return fixed2(c.HSL().Saturation)
		case Luminance:
			return fixed2(c.HSL().Luminance)
		}
	}
	return ""
}

// Formats lists every supported format in Compare order.
func Formats() []Format {
	out := make([]Format, 0, 14)
	for o := range Output(len(outputNames)) {
		for ch := range Channel(len(channelNames)) {
			if f := (Format{Output: o, Channel: ch}); f.Supported() {
				out = append(out, f)
			}
		}
	}
	return out
}

func channelValue(c color.RGB, ch Channel) (uint8, bool) {
	switch ch {
	case Red:
		return c.R, true
	case Green:
		return c.G, true
	case Blue:
		return c.B, true
	default:
		return 0, false
	}
}

const hexDigits = "0123456789abcdef"

func hexByte(v uint8) string {
	return string([]byte{hexDigits[v>>4], hexDigits[v&0x0F]})
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
