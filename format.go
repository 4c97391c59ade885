package tint

import (
	"fmt"
	"math"
	"strings"
)

// Format selects the textual syntax a Color renders to. Parse records
// the format it matched so a parsed color prints back in the syntax it
// arrived in.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ToText renders v in the given format. Opaque colors omit the alpha
// term; hex grows to #RRGGBBAA and the functional syntaxes append a
// "/ n%" component when alpha is below 1.
func ToText(v Value, f Format) string {
	p := v.Pivot()
	switch f {
	case FormatRGB:
		if p.Alpha == 1 {
			return fmt.Sprintf("rgb(%d %d %d)", p.R, p.G, p.B)
		}
		return fmt.Sprintf("rgb(%d %d %d / %s%%)", p.R, p.G, p.B, percent(p.Alpha))
	case FormatHSL:
		h := hslOf(v)
		if p.Alpha == 1 {
			return fmt.Sprintf("hsl(%s %s%% %s%%)", degrees(h.H), percent(h.S), percent(h.L))
		}
		return fmt.Sprintf("hsl(%s %s%% %s%% / %s%%)", degrees(h.H), percent(h.S), percent(h.L), percent(p.Alpha))
	default:
		if p.Alpha == 1 {
			return fmt.Sprintf("#%02X%02X%02X", p.R, p.G, p.B)
		}
		return fmt.Sprintf("#%02X%02X%02X%02X", p.R, p.G, p.B, alphaByte(p.Alpha))
	}
}

// hslOf converts v to HSL, unwrapping any surrounding Color.
func hslOf(v Value) HSL {
	cv := Convert(v, SpaceHSL)
	if c, ok := cv.(Color); ok {
		return c.value.(HSL)
	}
	return cv.(HSL)
}

func alphaByte(a float64) uint8 {
	return clampChannel(roundChannel(a))
}

// percent renders a [0,1] fraction as a percentage, trimming trailing
// zeros so 0.5 prints as "50" and 0.333 as "33.3".
func percent(v float64) string {
	return trimFloat(v * 100)
}

// degrees renders a hue, trimming a fractional part that rounds away.
func degrees(v float64) string {
	return trimFloat(v)
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
