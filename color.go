package prism

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSVA is the working representation of a color: hue in [0,360),
// saturation, value and alpha in [0,1].
type HSVA struct {
	H, S, V, A float64
}

// HSLA is a transient HSL-family view of a color: hue in [0,360),
// saturation, lightness and alpha in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// RGBA is a transient RGB-family view of a color. R, G and B are in
// display units (0-255) and alpha in [0,1]. Fields are not clamped on
// assignment; clamping happens when the color is rendered to a string.
type RGBA struct {
	R, G, B, A float64
}

// ParseHSVA parses any supported color string into HSVA.
// Returns false for malformed input, leaving the caller's state untouched.
func ParseHSVA(value string) (HSVA, bool) {
	c, a, ok := parseColor(value)
	if !ok {
		return HSVA{}, false
	}
	h, s, v := c.Hsv()
	return HSVA{H: h, S: s, V: v, A: a}, true
}

// ParseHSLA parses any supported color string into HSLA.
func ParseHSLA(value string) (HSLA, bool) {
	c, a, ok := parseColor(value)
	if !ok {
		return HSLA{}, false
	}
	h, s, l := c.Hsl()
	return HSLA{H: h, S: s, L: l, A: a}, true
}

// ParseRGBA parses any supported color string into RGBA.
func ParseRGBA(value string) (RGBA, bool) {
	c, a, ok := parseColor(value)
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: a}, true
}

// Format renders the color into the given format, clamping components
// to their valid ranges.
func (c HSVA) Format(f Format) string {
	col := colorful.Hsv(wrapHue(c.H), clamp01(c.S), clamp01(c.V))
	return render(col, c.A, f)
}

// Format renders the color into the given format. HSL-family targets are
// rendered directly from the fields to avoid round-trip drift.
func (c HSLA) Format(f Format) string {
	switch f {
	case FormatHSL:
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
			roundInt(wrapHue(c.H)), roundInt(clamp01(c.S)*100), roundInt(clamp01(c.L)*100))
	case FormatHSLA:
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)",
			roundInt(wrapHue(c.H)), roundInt(clamp01(c.S)*100), roundInt(clamp01(c.L)*100),
			formatAlpha(c.A))
	default:
		col := colorful.Hsl(wrapHue(c.H), clamp01(c.S), clamp01(c.L))
		return render(col, c.A, f)
	}
}

// Format renders the color into the given format. RGB-family targets are
// rendered directly from the fields, clamping to 0-255 at render time.
func (c RGBA) Format(f Format) string {
	switch f {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)",
			roundInt(clampByte(c.R)), roundInt(clampByte(c.G)), roundInt(clampByte(c.B)))
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)",
			roundInt(clampByte(c.R)), roundInt(clampByte(c.G)), roundInt(clampByte(c.B)),
			formatAlpha(c.A))
	default:
		col := colorful.Color{R: clampByte(c.R) / 255, G: clampByte(c.G) / 255, B: clampByte(c.B) / 255}
		return render(col, c.A, f)
	}
}

// parseColor parses a color string in any supported format into a
// colorful.Color plus alpha. Unrecognized or malformed input returns
// ok == false; parsing never panics.
func parseColor(value string) (colorful.Color, float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(v)

	case strings.HasPrefix(v, "hsla("):
		args, ok := splitArgs(v, "hsla")
		if !ok || len(args) != 4 {
			return colorful.Color{}, 0, false
		}
		h, okH := parseNumber(args[0])
		s, okS := parsePercent(args[1])
		l, okL := parsePercent(args[2])
		a, okA := parseNumber(args[3])
		if !okH || !okS || !okL || !okA {
			return colorful.Color{}, 0, false
		}
		return colorful.Hsl(wrapHue(h), clamp01(s), clamp01(l)), clamp01(a), true

	case strings.HasPrefix(v, "hsl("):
		args, ok := splitArgs(v, "hsl")
		if !ok || len(args) != 3 {
			return colorful.Color{}, 0, false
		}
		h, okH := parseNumber(args[0])
		s, okS := parsePercent(args[1])
		l, okL := parsePercent(args[2])
		if !okH || !okS || !okL {
			return colorful.Color{}, 0, false
		}
		return colorful.Hsl(wrapHue(h), clamp01(s), clamp01(l)), 1, true

	case strings.HasPrefix(v, "rgba("):
		args, ok := splitArgs(v, "rgba")
		if !ok || len(args) != 4 {
			return colorful.Color{}, 0, false
		}
		r, okR := parseNumber(args[0])
		g, okG := parseNumber(args[1])
		b, okB := parseNumber(args[2])
		a, okA := parseNumber(args[3])
		if !okR || !okG || !okB || !okA {
			return colorful.Color{}, 0, false
		}
		return colorful.Color{R: clampByte(r) / 255, G: clampByte(g) / 255, B: clampByte(b) / 255}, clamp01(a), true

	case strings.HasPrefix(v, "rgb("):
		args, ok := splitArgs(v, "rgb")
		if !ok || len(args) != 3 {
			return colorful.Color{}, 0, false
		}
		r, okR := parseNumber(args[0])
		g, okG := parseNumber(args[1])
		b, okB := parseNumber(args[2])
		if !okR || !okG || !okB {
			return colorful.Color{}, 0, false
		}
		return colorful.Color{R: clampByte(r) / 255, G: clampByte(g) / 255, B: clampByte(b) / 255}, 1, true

	default:
		return colorful.Color{}, 0, false
	}
}

// parseHex parses #rgb, #rgba, #rrggbb and #rrggbbaa.
func parseHex(v string) (colorful.Color, float64, bool) {
	base := v
	alpha := 1.0

	switch len(v) {
	case 5: // #rgba
		base = v[:4]
		n, err := strconv.ParseUint(strings.Repeat(v[4:5], 2), 16, 8)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		alpha = float64(n) / 255
	case 9: // #rrggbbaa
		base = v[:7]
		n, err := strconv.ParseUint(v[7:9], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		alpha = float64(n) / 255
	}

	c, err := colorful.Hex(base)
	if err != nil {
		return colorful.Color{}, 0, false
	}
	return c, alpha, true
}

// render stringifies a clamped colorful color plus alpha into the target
// format.
func render(c colorful.Color, alpha float64, f Format) string {
	c = c.Clamped()
	alpha = clamp01(alpha)

	switch f {
	case FormatHex:
		return c.Hex()
	case FormatHexAlpha:
		return fmt.Sprintf("%s%02x", c.Hex(), roundInt(alpha*255))
	case FormatRGB:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case FormatRGBA:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(alpha))
	case FormatHSL:
		h, s, l := c.Hsl()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", roundInt(h), roundInt(s*100), roundInt(l*100))
	case FormatHSLA:
		h, s, l := c.Hsl()
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", roundInt(h), roundInt(s*100), roundInt(l*100), formatAlpha(alpha))
	default:
		return c.Hex()
	}
}

// splitArgs extracts the comma-separated arguments of a functional
// notation like "rgb(1, 2, 3)".
func splitArgs(v, fn string) ([]string, bool) {
	if !strings.HasPrefix(v, fn+"(") || !strings.HasSuffix(v, ")") {
		return nil, false
	}
	body := v[len(fn)+1 : len(v)-1]
	args := strings.Split(body, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parsePercent parses a percentage argument ("50%" or "50") into [0,1].
func parsePercent(s string) (float64, bool) {
	n, ok := parseNumber(s)
	if !ok {
		return 0, false
	}
	return n / 100, true
}

// formatAlpha renders an alpha value rounded to two decimal places,
// without a trailing zero ("0.5", not "0.50").
func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(clamp01(a)*100)/100, 'f', -1, 64)
}

// wrapHue normalizes a hue angle into [0,360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func clampByte(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
