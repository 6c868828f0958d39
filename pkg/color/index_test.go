package color_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-base16/pkg/color"
)

func TestIndex_RoundTripAllBytes(t *testing.T) {
	for v := 0; v < 256; v++ {
		idx := color.Index(v)
		text := idx.String()
		back, err := color.ParseIndex(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if back != idx {
			t.Fatalf("round trip mismatch for %d: got %d", v, back)
		}
	}
}

func TestIndex_String(t *testing.T) {
	tests := map[color.Index]string{
		0x00: "base00",
		0x07: "base07",
		0x0A: "base0A",
		0x7F: "base7F",
		0xFF: "baseFF",
	}
	for idx, want := range tests {
		if got := idx.String(); got != want {
			t.Errorf("index %d: want %q, got %q", uint8(idx), want, got)
		}
	}
}

func TestParseIndex_CaseInsensitiveDigits(t *testing.T) {
	lower := color.MustParseIndex("base0a")
	upper := color.MustParseIndex("base0A")
	if lower != upper || lower != 0x0A {
		t.Fatalf("expected 0x0A for both cases, got %d and %d", lower, upper)
	}
}

func TestParseIndex_Invalid(t *testing.T) {
	inputs := []string{"", "base", "base0", "base000", "base0G", "BASE00", "bas00", "00", "base-1", "base 0"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := color.ParseIndex(input)
			if !errors.Is(err, color.ErrInvalidIndex) {
				t.Fatalf("expected ErrInvalidIndex for %q, got %v", input, err)
			}
			if errors.Is(err, color.ErrInvalidHex) {
				t.Fatalf("index errors should not match ErrInvalidHex")
			}
		})
	}
}

func TestIndex_Ordering(t *testing.T) {
	if !(color.MustParseIndex("base09") < color.MustParseIndex("base0A")) {
		t.Fatalf("expected numeric ordering base09 < base0A")
	}
	if !(color.MustParseIndex("base0F") < color.MustParseIndex("base10")) {
		t.Fatalf("expected numeric ordering base0F < base10")
	}
}
