// Package field parses base16 template placeholder names such as
// "scheme-author", "base07-hex-r" or "base0A-hsl-h" and renders colours in the
// format a placeholder asks for.
//
// The set of formats is closed: hex (whole colour, a single channel, or the
// byte-swapped bgr form), rgb and dec (single channel only) and hsl (hue,
// saturation or luminance). Names outside the grammar parse to Unparsable,
// which renderers treat as an absent field rather than an error.
package field
