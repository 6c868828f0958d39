// Package scheme models a base16 colour scheme: its name, author, derived
// slug and indexed palette. It decodes scheme documents (YAML or JSON, via
// LoadFile/LoadFS/Decode) and resolves template placeholders against the
// palette.
//
// *Scheme implements the two hooks template engines need: RenderField, which
// returns the text for a placeholder or reports it as absent, and
// FieldTruthy, which gates sections.
package scheme
