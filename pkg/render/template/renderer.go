package template

import (
	"io"
)

// FieldContent is the lookup contract engines call for every placeholder.
// RenderField reports false when the name is not a resolvable field, which
// engines treat as blank. FieldTruthy gates sections.
type FieldContent interface {
	RenderField(name string) (string, bool)
	FieldTruthy(name string) bool
}

// SchemeRenderer renders template text against FieldContent. Implementations
// must be safe for concurrent use.
type SchemeRenderer interface {
	Name() string
	RenderScheme(templateContent string, content FieldContent, out ...io.Writer) (string, error)
	RenderSchemeTemplate(name string, content FieldContent, out ...io.Writer) (string, error)
}

// CapacityHint returns the buffer size hint advertised by content, or zero.
func CapacityHint(content FieldContent) int {
	if hinted, ok := content.(interface{ CapacityHint() int }); ok {
		return max(hinted.CapacityHint(), 0)
	}
	return 0
}

// WriteAll copies rendered into every writer in out.
func WriteAll(rendered string, out ...io.Writer) error {
	for _, w := range out {
		if w == nil {
			continue
		}
		if _, err := io.WriteString(w, rendered); err != nil {
			return err
		}
	}
	return nil
}
