package tint

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Swatch renders a small colored block followed by the color's text
// form, for eyeballing colors in a terminal. The block uses 24-bit
// ANSI background escapes; when w is not a terminal the escapes are
// dropped and only the text form remains.
func Swatch(w io.Writer, v Value) {
	text := ToText(v, formatOf(v))
	if !writerIsTerminal(w) {
		fmt.Fprintln(w, text)
		return
	}
	p := v.Pivot()
	fg := TextColor(v).Pivot()
	fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm %s \x1b[0m\n",
		p.R, p.G, p.B, fg.R, fg.G, fg.B, text)
}

// SwatchAll renders one swatch per value, aligned in a column.
func SwatchAll(w io.Writer, vs []Value) {
	for _, v := range vs {
		Swatch(w, v)
	}
}

// Sprint returns the swatch as a string with escapes always included,
// for callers that manage terminal detection themselves.
func Sprint(v Value) string {
	var b strings.Builder
	p := v.Pivot()
	fg := TextColor(v).Pivot()
	fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm %s \x1b[0m",
		p.R, p.G, p.B, fg.R, fg.G, fg.B, ToText(v, formatOf(v)))
	return b.String()
}

func formatOf(v Value) Format {
	if c, ok := v.(Color); ok {
		return c.format
	}
	return FormatHex
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
