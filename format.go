package prism

import "strings"

// Format specifies the textual shape of a canonical color value.
type Format int

const (
	// FormatHex renders "#rrggbb".
	FormatHex Format = iota

	// FormatHexAlpha renders "#rrggbbaa".
	FormatHexAlpha

	// FormatRGB renders "rgb(r, g, b)".
	FormatRGB

	// FormatRGBA renders "rgba(r, g, b, a)".
	FormatRGBA

	// FormatHSL renders "hsl(h, s%, l%)".
	FormatHSL

	// FormatHSLA renders "hsla(h, s%, l%, a)".
	FormatHSLA
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatHexAlpha:
		return "hexa"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatHSL:
		return "hsl"
	case FormatHSLA:
		return "hsla"
	default:
		return "unknown"
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatHexAlpha, FormatRGBA, FormatHSLA:
		return true
	default:
		return false
	}
}

// WithAlpha returns the alpha-carrying variant of the format.
func (f Format) WithAlpha() Format {
	switch f {
	case FormatHex:
		return FormatHexAlpha
	case FormatRGB:
		return FormatRGBA
	case FormatHSL:
		return FormatHSLA
	default:
		return f
	}
}

// DetectFormat infers the output format from a color value string.
// The family is decided by prefix and alpha presence by the value itself,
// so a value that carries alpha infers an alpha-carrying format.
// Unrecognized input defaults to FormatHex.
func DetectFormat(value string) Format {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "hsla("):
		return FormatHSLA
	case strings.HasPrefix(v, "hsl("):
		return FormatHSL
	case strings.HasPrefix(v, "rgba("):
		return FormatRGBA
	case strings.HasPrefix(v, "rgb("):
		return FormatRGB
	case strings.HasPrefix(v, "#"):
		// 5 and 9 cover #rgba and #rrggbbaa.
		if len(v) == 5 || len(v) == 9 {
			return FormatHexAlpha
		}
		return FormatHex
	default:
		return FormatHex
	}
}

// hslFamily reports whether a value string belongs to the HSL family.
// Everything else (hex, rgb) projects through the RGB family.
func hslFamily(value string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(value)), "hsl")
}
