package util

import (
	"slices"
	"testing"
)

func TestStringsFlag(t *testing.T) {
	var s stringsFlag
	if err := s.Set("grim  -t png -g"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !slices.Equal(s, stringsFlag{"grim", "-t", "png", "-g"}) {
		t.Fatalf("value = %q", s)
	}
	if str := s.String(); str != "grim -t png -g" {
		t.Fatalf("string = %q", str)
	}
}

func TestFindFunc(t *testing.T) {
	s := []int{1, 4, 9, 16}

	v, ok := FindFunc(s, func(v int) bool { return v > 5 })
	if !ok || v != 9 {
		t.Fatalf("found (%v, %v)", v, ok)
	}

	v, ok = FindFunc(s, func(v int) bool { return v > 100 })
	if ok || v != 0 {
		t.Fatalf("found (%v, %v)", v, ok)
	}
}
