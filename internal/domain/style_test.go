package domain

import (
	"errors"
	"testing"
)

func TestStylesOrder(t *testing.T) {
	got := Styles()
	want := []StyleLabel{StyleCasual, StyleBusiness, StyleNightOut}
	if len(got) != len(want) {
		t.Fatalf("len(Styles()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Styles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	got[0] = "mutated"
	if Styles()[0] != StyleCasual {
		t.Fatalf("Styles() must return a copy")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Night Out", "night-out"},
		{"Casual", "casual"},
		{"Virtual  Stylist\tAI", "virtual-stylist-ai"},
		{" Edge ", "-edge-"},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, in := range []string{"Night Out", "night-out"} {
		s, ok := ParseStyle(in)
		if !ok || s != StyleNightOut {
			t.Fatalf("ParseStyle(%q) = %q, %v", in, s, ok)
		}
	}
	if _, ok := ParseStyle("formal"); ok {
		t.Fatalf("ParseStyle accepted unknown style")
	}
}

func TestMessage(t *testing.T) {
	if got := Message(nil); got != UnknownErrorMessage {
		t.Fatalf("Message(nil) = %q", got)
	}
	if got := Message(errors.New("  ")); got != UnknownErrorMessage {
		t.Fatalf("Message(blank) = %q", got)
	}
	err := &GenerationError{Style: StyleBusiness, Err: errors.New("quota exceeded")}
	if got := Message(err); got != "quota exceeded" {
		t.Fatalf("Message(GenerationError) = %q", got)
	}
	var ge *GenerationError
	if !errors.As(error(err), &ge) || ge.Style != StyleBusiness {
		t.Fatalf("errors.As failed for GenerationError")
	}
}
