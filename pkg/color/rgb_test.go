package color_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-base16/pkg/color"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  color.RGB
	}{
		{"000000", color.RGB{}},
		{"ffffff", color.RGB{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"FFFFFF", color.RGB{R: 0xFF, G: 0xFF, B: 0xFF}},
		{"7cafc2", color.RGB{R: 124, G: 175, B: 194}},
		{"7CaFc2", color.RGB{R: 124, G: 175, B: 194}},
		{"7f7f7f", color.RGB{R: 0x7F, G: 0x7F, B: 0x7F}},
		{"010203", color.RGB{R: 1, G: 2, B: 3}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := color.ParseHex(test.input)
			if err != nil {
				t.Fatalf("parse %q: %v", test.input, err)
			}
			if got != test.want {
				t.Fatalf("parse %q: want %+v, got %+v", test.input, test.want, got)
			}
		})
	}
}

func TestParseHex_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"fff",
		"#7cafc2",
		"7cafc",
		"7cafc2a",
		"7cafcg",
		"+7cafc",
		"red",
		" 7cafc2",
		"７cafc2",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := color.ParseHex(input)
			if err == nil {
				t.Fatalf("expected error for %q", input)
			}
			if !errors.Is(err, color.ErrInvalidHex) {
				t.Fatalf("expected ErrInvalidHex, got %v", err)
			}
			var decodeErr *color.DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("expected *DecodeError, got %T", err)
			}
			if decodeErr.Input != input {
				t.Fatalf("input mismatch: want %q, got %q", input, decodeErr.Input)
			}
		})
	}
}

func TestRGB_StringRoundTrip(t *testing.T) {
	samples := []uint8{0x00, 0x01, 0x0F, 0x10, 0x7E, 0x7F, 0x80, 0xAF, 0xFE, 0xFF}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				c := color.RGB{R: r, G: g, B: b}
				text := c.String()
				if len(text) != 6 {
					t.Fatalf("%+v: expected 6 characters, got %q", c, text)
				}
				back, err := color.ParseHex(text)
				if err != nil {
					t.Fatalf("%+v: parse %q: %v", c, text, err)
				}
				if back != c {
					t.Fatalf("round trip mismatch: want %+v, got %+v", c, back)
				}
			}
		}
	}
}

func TestRGB_StringIsLowercase(t *testing.T) {
	if got := color.MustParseHex("ABCDEF").String(); got != "abcdef" {
		t.Fatalf("want abcdef, got %q", got)
	}
}

func TestRGB_TextMarshal(t *testing.T) {
	payload := map[string]color.RGB{"base00": color.MustParseHex("7CAFC2")}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"base00":"7cafc2"}` {
		t.Fatalf("unexpected json: %s", data)
	}

	var decoded map[string]color.RGB
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(payload, decoded); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"base00":"nothex"}`), &decoded); !errors.Is(err, color.ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}
}
