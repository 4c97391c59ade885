package tint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat reports input text matching no known color syntax.
// Every error returned by Parse unwraps to it.
var ErrInvalidFormat = errors.New("tint: invalid color format")

// ParseError describes why an input failed to parse.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tint: cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidFormat }

func parseErr(input, reason string) error {
	Logger().Debug("parse rejected", "input", input, "reason", reason)
	return &ParseError{Input: input, Reason: reason}
}

// Parse reads a color literal. Recognized syntaxes:
//
//	#F0C, #F0C8, #FF00CC, #FF00CC88
//	rgb(255 0 204), rgb(255, 0, 204), rgba(255 0 204 / 53%)
//	hsl(312 100% 50%), hsla(312, 100%, 50%, 0.53)
//	named colors: "tomato", "navy", ...
//
// The functional syntaxes take comma- or space-separated arguments and
// an alpha given as a percentage or a 0 to 1 fraction, with or without
// a "/" separator. The matched syntax is remembered so the returned
// Color prints back in the form it arrived in.
func Parse(s string) (Color, error) {
	in := strings.TrimSpace(s)
	switch {
	case in == "":
		return Color{}, parseErr(s, "empty input")
	case strings.HasPrefix(in, "#"):
		return parseHex(in)
	case hasFuncPrefix(in, "rgb"):
		return parseRGBFunc(in)
	case hasFuncPrefix(in, "hsl"):
		return parseHSLFunc(in)
	}
	if c, ok := Named(in); ok {
		Logger().Debug("parse matched", "input", in, "grammar", "named")
		return Wrap(c), nil
	}
	return Color{}, parseErr(s, "unrecognized syntax")
}

// MustParse is Parse for trusted literals; it panics on malformed
// input.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromTuple builds a wrapped RGB color from raw channel values,
// clamping each into range.
func FromTuple(r, g, b int, alpha float64) Color {
	return Wrap(RGB{R: r, G: g, B: b, Alpha: alpha}.cast())
}

func parseHex(in string) (Color, error) {
	digits := in[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return Color{}, parseErr(in, "invalid hex digit")
		}
	}
	var r, g, b uint8
	alpha := 1.0
	switch len(digits) {
	case 3, 4:
		r = hexNibble(digits[0])
		g = hexNibble(digits[1])
		b = hexNibble(digits[2])
		r, g, b = r*17, g*17, b*17
		if len(digits) == 4 {
			alpha = float64(hexNibble(digits[3])*17) / 255
		}
	case 6, 8:
		r = hexByte(digits[0], digits[1])
		g = hexByte(digits[2], digits[3])
		b = hexByte(digits[4], digits[5])
		if len(digits) == 8 {
			alpha = float64(hexByte(digits[6], digits[7])) / 255
		}
	default:
		return Color{}, parseErr(in, "hex needs 3, 4, 6 or 8 digits")
	}
	Logger().Debug("parse matched", "input", in, "grammar", "hex")
	return Wrap(RGB{R: int(r), G: int(g), B: int(b), Alpha: alpha}), nil
}

func parseRGBFunc(in string) (Color, error) {
	args, alpha, err := funcArgs(in, "rgb")
	if err != nil {
		return Color{}, err
	}
	if len(args) != 3 {
		return Color{}, parseErr(in, "rgb() takes three channels")
	}
	var ch [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return Color{}, parseErr(in, "channel is not an integer")
		}
		ch[i] = v
	}
	Logger().Debug("parse matched", "input", in, "grammar", "rgb")
	c := Wrap(RGB{R: ch[0], G: ch[1], B: ch[2], Alpha: alpha}.cast().(RGB))
	return c.WithFormat(FormatRGB), nil
}

func parseHSLFunc(in string) (Color, error) {
	args, alpha, err := funcArgs(in, "hsl")
	if err != nil {
		return Color{}, err
	}
	if len(args) != 3 {
		return Color{}, parseErr(in, "hsl() takes hue, saturation, lightness")
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, parseErr(in, "hue is not a number")
	}
	s, err := fraction(args[1])
	if err != nil {
		return Color{}, parseErr(in, "saturation is not a number")
	}
	l, err := fraction(args[2])
	if err != nil {
		return Color{}, parseErr(in, "lightness is not a number")
	}
	Logger().Debug("parse matched", "input", in, "grammar", "hsl")
	c := Wrap(HSL{H: h, S: s, L: l, Alpha: alpha}.cast().(HSL))
	return c.WithFormat(FormatHSL), nil
}

// funcArgs strips a "name(...)" or "namea(...)" wrapper and splits the
// body on commas or spaces. An alpha component, marked by a "/" or by
// being the fourth argument of the -a form, is parsed off separately.
func funcArgs(in, name string) (args []string, alpha float64, err error) {
	body := in[len(name):]
	hasAlphaArg := false
	if strings.HasPrefix(body, "a") || strings.HasPrefix(body, "A") {
		body = body[1:]
		hasAlphaArg = true
	}
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return nil, 0, parseErr(in, "malformed function syntax")
	}
	body = body[1 : len(body)-1]

	alpha = 1
	if i := strings.IndexByte(body, '/'); i >= 0 {
		alpha, err = fraction(strings.TrimSpace(body[i+1:]))
		if err != nil {
			return nil, 0, parseErr(in, "alpha is not a number")
		}
		body = body[:i]
		hasAlphaArg = false
	}

	args = strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if hasAlphaArg && len(args) == 4 {
		alpha, err = fraction(args[3])
		if err != nil {
			return nil, 0, parseErr(in, "alpha is not a number")
		}
		args = args[:3]
	}
	return args, alpha, nil
}

// fraction parses a [0,1] quantity given either as a percentage or a
// plain decimal.
func fraction(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	return strconv.ParseFloat(s, 64)
}

func hasFuncPrefix(in, name string) bool {
	return strings.HasPrefix(in, name+"(") || strings.HasPrefix(in, name+"a(")
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func hexByte(hi, lo byte) uint8 {
	return hexNibble(hi)<<4 | hexNibble(lo)
}
