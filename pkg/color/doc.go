// Package color holds the value types a base16 scheme is made of: the
// palette Index (base00..baseFF) and the 24-bit RGB colour with its six digit
// hex text form. It also converts RGB to HSL for templates that ask for hue,
// saturation or luminance.
package color
