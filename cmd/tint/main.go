// Command tint inspects and manipulates colors from the shell.
//
// Usage:
//
//	tint '#FF7F00'                 show a color in every colorspace
//	tint -mix '#005500' '#FF00FF'  blend two colors
//	tint -spectral -mix '#FFFF00' '#0000FF'
//	tint -palette triadic tomato
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tintpkg/tint"
)

func main() {
	var (
		mix      = flag.String("mix", "", "second color to blend with")
		weight   = flag.Float64("weight", 0.5, "blend weight of the first color")
		spectral = flag.Bool("spectral", false, "blend like pigment instead of light")
		palette  = flag.String("palette", "", "derive a palette: complementary, analogous, triadic, tetradic")
		random   = flag.Bool("random", false, "pick a random color")
		verbose  = flag.Bool("v", false, "log parse diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var c tint.Color
	switch {
	case *random:
		c = tint.Random()
	case flag.NArg() == 1:
		var err error
		c, err = tint.Parse(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	if *mix != "" {
		other, err := tint.Parse(*mix)
		if err != nil {
			log.Fatal(err)
		}
		if *spectral {
			c = tint.SpectralMix(c, other, *weight).(tint.Color)
		} else {
			c = tint.Mix(c, other, *weight).(tint.Color)
		}
	}

	if *palette != "" {
		vs, err := derive(c, *palette)
		if err != nil {
			log.Fatal(err)
		}
		tint.SwatchAll(os.Stdout, vs)
		return
	}

	show(c)
}

func derive(c tint.Color, name string) ([]tint.Value, error) {
	switch name {
	case "complementary":
		return tint.Complementary(c), nil
	case "analogous":
		return tint.Analogous(c), nil
	case "triadic":
		return tint.Triadic(c), nil
	case "tetradic":
		return tint.Tetradic(c), nil
	}
	return nil, fmt.Errorf("unknown palette %q", name)
}

func show(c tint.Color) {
	tint.Swatch(os.Stdout, c)
	for _, s := range []tint.Space{tint.SpaceRGB, tint.SpaceHSL, tint.SpaceLAB, tint.SpaceXYZ, tint.SpaceCMYK} {
		v := tint.Convert(c.Value(), s)
		fmt.Printf("  %-4s %+v\n", s, v)
	}
}
