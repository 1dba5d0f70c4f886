package prism

import "testing"

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		value string
		want  Format
	}{
		{"#ffffff", FormatHex},
		{"#fff", FormatHex},
		{"#ffffff80", FormatHexAlpha},
		{"#fff8", FormatHexAlpha},
		{"rgb(1, 2, 3)", FormatRGB},
		{"rgba(1, 2, 3, 0.5)", FormatRGBA},
		{"hsl(0, 0%, 100%)", FormatHSL},
		{"hsla(0, 0%, 100%, 0.5)", FormatHSLA},
		{"  HSLA(0, 0%, 100%, 1)", FormatHSLA},
		{"garbage", FormatHex},
		{"", FormatHex},
	}

	for _, tc := range cases {
		if got := DetectFormat(tc.value); got != tc.want {
			t.Errorf("DetectFormat(%q) = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	withAlpha := []Format{FormatHexAlpha, FormatRGBA, FormatHSLA}
	for _, f := range withAlpha {
		if !f.HasAlpha() {
			t.Errorf("expected %s to carry alpha", f)
		}
	}

	without := []Format{FormatHex, FormatRGB, FormatHSL}
	for _, f := range without {
		if f.HasAlpha() {
			t.Errorf("expected %s to not carry alpha", f)
		}
	}
}

func TestFormat_WithAlpha(t *testing.T) {
	cases := []struct {
		in, want Format
	}{
		{FormatHex, FormatHexAlpha},
		{FormatRGB, FormatRGBA},
		{FormatHSL, FormatHSLA},
		{FormatRGBA, FormatRGBA},
	}
	for _, tc := range cases {
		if got := tc.in.WithAlpha(); got != tc.want {
			t.Errorf("%s.WithAlpha() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	if FormatHSLA.String() != "hsla" {
		t.Errorf("expected 'hsla', got %q", FormatHSLA.String())
	}
	if Format(99).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", Format(99).String())
	}
}

func TestHSLFamily(t *testing.T) {
	if !hslFamily("hsl(0, 0%, 0%)") || !hslFamily("HSLA(0, 0%, 0%, 1)") {
		t.Error("expected hsl prefixes to be HSL family")
	}
	if hslFamily("#ffffff") || hslFamily("rgb(0, 0, 0)") {
		t.Error("expected hex and rgb to not be HSL family")
	}
}
