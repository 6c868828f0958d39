package scheme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-base16/pkg/color"
)

// Document keys for scheme metadata.
const (
	KeyScheme = "scheme"
	KeyAuthor = "author"
)

var (
	// ErrMissingField is returned when a document omits scheme or author.
	ErrMissingField = errors.New("scheme: missing required field")
	// ErrUnknownKey is returned for keys that are neither metadata nor baseXX.
	ErrUnknownKey = errors.New("scheme: unknown key")
	// ErrDuplicateIndex is returned when two keys name the same palette slot.
	ErrDuplicateIndex = errors.New("scheme: duplicate color index")
	// ErrDuplicateKey is returned when scheme or author appears twice.
	ErrDuplicateKey = errors.New("scheme: duplicate key")
)

// rawField is one key/value pair from a document, in document order.
type rawField struct {
	key   string
	value string
	line  int
}

func (f rawField) where() string {
	if f.line > 0 {
		return fmt.Sprintf("line %d: ", f.line)
	}
	return ""
}

func fromFields(fields []rawField) (Scheme, error) {
	var (
		out       = Scheme{Colors: make(map[color.Index]color.RGB)}
		hasName   bool
		hasAuthor bool
	)
	for _, f := range fields {
		switch f.key {
		case KeyScheme:
			if hasName {
				return Scheme{}, fmt.Errorf("%s%w %q", f.where(), ErrDuplicateKey, f.key)
			}
			out.Name, hasName = f.value, true
			continue
		case KeyAuthor:
			if hasAuthor {
				return Scheme{}, fmt.Errorf("%s%w %q", f.where(), ErrDuplicateKey, f.key)
			}
			out.Author, hasAuthor = f.value, true
			continue
		}
		if !strings.HasPrefix(f.key, color.IndexPrefix) {
			return Scheme{}, fmt.Errorf("%s%w %q", f.where(), ErrUnknownKey, f.key)
		}
		idx, err := color.ParseIndex(f.key)
		if err != nil {
			return Scheme{}, fmt.Errorf("%skey %q: %w", f.where(), f.key, err)
		}
		if _, exists := out.Colors[idx]; exists {
			return Scheme{}, fmt.Errorf("%s%w %s (key %q)", f.where(), ErrDuplicateIndex, idx, f.key)
		}
		c, err := color.ParseHex(f.value)
		if err != nil {
			return Scheme{}, fmt.Errorf("%s%s: %w", f.where(), idx, err)
		}
		out.Colors[idx] = c
	}
	if !hasName {
		return Scheme{}, fmt.Errorf("%w %q", ErrMissingField, KeyScheme)
	}
	if !hasAuthor {
		return Scheme{}, fmt.Errorf("%w %q", ErrMissingField, KeyAuthor)
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Scalars are read verbatim, so
// unquoted colours such as 000000 keep their digits.
func (s *Scheme) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("scheme: line %d: expected a mapping", node.Line)
	}

	fields := make([]rawField, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("scheme: line %d: keys must be scalars", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("scheme: line %d: value of %q must be a scalar", value.Line, key.Value)
		}
		fields = append(fields, rawField{key: key.Value, value: value.Value, line: key.Line})
	}

	decoded, err := fromFields(fields)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler: scheme, author, then colours in
// ascending index order. The slug is not written.
func (s *Scheme) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content,
		strNode(KeyScheme), strNode(s.Name),
		strNode(KeyAuthor), strNode(s.Author),
	)
	for _, idx := range s.Indices() {
		value := strNode(s.Colors[idx].String())
		value.Style = yaml.DoubleQuotedStyle
		node.Content = append(node.Content, strNode(idx.String()), value)
	}
	return node, nil
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// UnmarshalJSON implements json.Unmarshaler with the same rules as YAML.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("scheme: %w", err)
	}
	if raw == nil {
		return errors.New("scheme: expected a JSON object")
	}

	keys := slices.Sorted(maps.Keys(raw))
	fields := make([]rawField, 0, len(raw))
	for _, key := range keys {
		var value string
		if err := json.Unmarshal(raw[key], &value); err != nil {
			return fmt.Errorf("scheme: value of %q must be a string: %w", key, err)
		}
		fields = append(fields, rawField{key: key, value: value})
	}

	decoded, err := fromFields(fields)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalJSON implements json.Marshaler with the YAML key order.
func (s *Scheme) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeMember := func(first bool, key, value string) error {
		if !first {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	if err := writeMember(true, KeyScheme, s.Name); err != nil {
		return nil, err
	}
	if err := writeMember(false, KeyAuthor, s.Author); err != nil {
		return nil, err
	}
	for _, idx := range s.Indices() {
		if err := writeMember(false, idx.String(), s.Colors[idx].String()); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode parses a YAML (or JSON) scheme document. The returned scheme has no
// slug yet; see WithSlug. source only labels errors.
func Decode(data []byte, source string) (*Scheme, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("scheme: decode %s: document is empty", source)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scheme: decode %s: %w", source, err)
	}
	// yaml skips Unmarshaler for null and empty documents, so the node is
	// checked here before the required fields are.
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, fmt.Errorf("scheme: decode %s: expected a mapping, document is empty", source)
	}
	var s Scheme
	if err := s.UnmarshalYAML(&doc); err != nil {
		return nil, fmt.Errorf("scheme: decode %s: %w", source, err)
	}
	return &s, nil
}

// Encode writes s as a YAML document.
func Encode(s *Scheme) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scheme: encode %q: %w", s.Name, err)
	}
	return data, nil
}
