package template_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goliatone/go-base16/pkg/render/template"
	"github.com/goliatone/go-base16/pkg/testsupport"
)

type bareContent struct{}

func (bareContent) RenderField(string) (string, bool) { return "", false }
func (bareContent) FieldTruthy(string) bool           { return false }

func TestCapacityHint(t *testing.T) {
	ocean := testsupport.Ocean()
	if got := template.CapacityHint(ocean); got != ocean.CapacityHint() || got == 0 {
		t.Fatalf("expected scheme hint %d, got %d", ocean.CapacityHint(), got)
	}
	if got := template.CapacityHint(bareContent{}); got != 0 {
		t.Fatalf("content without a hint should report 0, got %d", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteAll(t *testing.T) {
	var a, b bytes.Buffer
	if err := template.WriteAll("7cafc2", &a, nil, &b); err != nil {
		t.Fatalf("write all: %v", err)
	}
	if a.String() != "7cafc2" || b.String() != "7cafc2" {
		t.Fatalf("unexpected writer contents %q %q", a.String(), b.String())
	}
	if err := template.WriteAll("x", failingWriter{}); err == nil {
		t.Fatalf("expected writer error")
	}
}
