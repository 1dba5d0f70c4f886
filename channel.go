package prism

// Space identifies the color component a channel edits.
type Space string

// Channel spaces across both families.
const (
	SpaceHue        Space = "h"
	SpaceSaturation Space = "s"
	SpaceLightness  Space = "l"
	SpaceRed        Space = "r"
	SpaceGreen      Space = "g"
	SpaceBlue       Space = "b"
	SpaceAlpha      Space = "a"
)

// Channel describes one editable numeric component of a color in display
// units: degrees for hue, percent for saturation/lightness/alpha, bytes
// for red/green/blue. Values are rounded for display.
type Channel struct {
	Label string
	Space Space
	Value float64
	Min   float64
	Max   float64
}

// Channels derives the channel descriptors for a canonical value. The
// family is chosen by the value's string prefix: HSL-family values produce
// H/S/L channels, everything else R/G/B. Alpha is appended when withAlpha
// is set. Malformed values fall back to the fallback string; if that fails
// too, opaque white is projected. The projection is pure and recomputed
// from scratch on every call.
func Channels(value string, withAlpha bool, fallback string) []Channel {
	if hslFamily(value) {
		c, ok := ParseHSLA(value)
		if !ok {
			if c, ok = ParseHSLA(fallback); !ok {
				c = HSLA{L: 1, A: 1}
			}
		}
		channels := []Channel{
			{Label: "H", Space: SpaceHue, Value: float64(roundInt(c.H)), Min: 0, Max: 360},
			{Label: "S", Space: SpaceSaturation, Value: float64(roundInt(c.S * 100)), Min: 0, Max: 100},
			{Label: "L", Space: SpaceLightness, Value: float64(roundInt(c.L * 100)), Min: 0, Max: 100},
		}
		if withAlpha {
			channels = append(channels, alphaChannel(c.A))
		}
		return channels
	}

	c, ok := ParseRGBA(value)
	if !ok {
		if c, ok = ParseRGBA(fallback); !ok {
			c = RGBA{R: 255, G: 255, B: 255, A: 1}
		}
	}
	channels := []Channel{
		{Label: "R", Space: SpaceRed, Value: float64(roundInt(c.R)), Min: 0, Max: 255},
		{Label: "G", Space: SpaceGreen, Value: float64(roundInt(c.G)), Min: 0, Max: 255},
		{Label: "B", Space: SpaceBlue, Value: float64(roundInt(c.B)), Min: 0, Max: 255},
	}
	if withAlpha {
		channels = append(channels, alphaChannel(c.A))
	}
	return channels
}

func alphaChannel(a float64) Channel {
	return Channel{Label: "A", Space: SpaceAlpha, Value: float64(roundInt(a * 100)), Min: 0, Max: 100}
}
