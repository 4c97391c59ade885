package tint

import (
	"bytes"
	"strings"
	"testing"
)

func TestSwatchNonTerminalDropsEscapes(t *testing.T) {
	var buf bytes.Buffer
	Swatch(&buf, MustParse("#FF00CC"))
	got := buf.String()
	if strings.Contains(got, "\x1b[") {
		t.Errorf("non-terminal output contains escapes: %q", got)
	}
	if !strings.Contains(got, "#FF00CC") {
		t.Errorf("output missing color text: %q", got)
	}
}

func TestSwatchAll(t *testing.T) {
	var buf bytes.Buffer
	SwatchAll(&buf, []Value{MustParse("#FF0000"), MustParse("#00FF00")})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines, want 2", len(lines))
	}
}

func TestSprintIncludesEscapes(t *testing.T) {
	got := Sprint(MustParse("#102030"))
	if !strings.Contains(got, "\x1b[48;2;16;32;48m") {
		t.Errorf("Sprint missing background escape: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("Sprint missing reset: %q", got)
	}
	if !strings.Contains(got, "#102030") {
		t.Errorf("Sprint missing text form: %q", got)
	}
}

func TestSwatchRespectsFormat(t *testing.T) {
	var buf bytes.Buffer
	Swatch(&buf, MustParse("rgb(1 2 3)"))
	if !strings.Contains(buf.String(), "rgb(1 2 3)") {
		t.Errorf("swatch ignored the preferred format: %q", buf.String())
	}
}
