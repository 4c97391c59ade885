package tint

import (
	"sort"
	"testing"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want RGB
	}{
		{"tomato", RGB{R: 255, G: 99, B: 71, Alpha: 1}},
		{"navy", RGB{R: 0, G: 0, B: 128, Alpha: 1}},
		{"white", RGB{R: 255, G: 255, B: 255, Alpha: 1}},
		{"rebeccapurple", RGB{R: 102, G: 51, B: 153, Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Named(tt.name)
			if !ok {
				t.Fatalf("Named(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("Named(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNamedCaseInsensitive(t *testing.T) {
	lower, _ := Named("tomato")
	mixed, ok := Named("  ToMaTo ")
	if !ok || mixed != lower {
		t.Errorf("Named is not case-insensitive: %+v vs %+v", mixed, lower)
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, ok := Named("not-a-color"); ok {
		t.Error("Named accepted an unknown name")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("Names() is empty")
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() is not sorted")
	}
	for _, want := range []string{"rebeccapurple", "tomato"} {
		i := sort.SearchStrings(names, want)
		if i >= len(names) || names[i] != want {
			t.Errorf("Names() does not contain %s", want)
		}
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	a := Names()
	a[0] = "mutated"
	b := Names()
	if b[0] == "mutated" {
		t.Error("Names() exposes shared backing storage")
	}
}
