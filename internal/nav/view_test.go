package nav

import (
	"errors"
	"testing"
)

func TestParseView(t *testing.T) {
	for _, v := range Views() {
		got, err := ParseView(v.String())
		if err != nil {
			t.Fatalf("ParseView(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("ParseView(%q) = %v", v.String(), got)
		}
	}

	if got, err := ParseView("  Gallery "); err != nil || got != Gallery {
		t.Errorf("ParseView with spaces and caps = %v, %v", got, err)
	}

	_, err := ParseView("blog")
	if !errors.Is(err, ErrUnknownView) {
		t.Errorf("expected ErrUnknownView, got %v", err)
	}
}

func TestView_ZeroValueIsHome(t *testing.T) {
	var v View
	if v != Home {
		t.Errorf("zero View = %v", v)
	}
	if View(42).String() != "unknown" {
		t.Errorf("out of range View = %q", View(42).String())
	}
}
