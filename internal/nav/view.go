package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownView is returned by ParseView for names outside the enumeration.
var ErrUnknownView = errors.New("unknown view")

// View identifies the logical page currently displayed.
// The zero value is Home.
type View int

const (
	Home View = iota
	Gallery
	Services
	Terms
	Privacy
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Gallery:
		return "gallery"
	case Services:
		return "services"
	case Terms:
		return "terms"
	case Privacy:
		return "privacy"
	default:
		return "unknown"
	}
}

// Views returns every view in declaration order.
func Views() []View {
	return []View{Home, Gallery, Services, Terms, Privacy}
}

// ParseView maps a case-insensitive view name to its View.
func ParseView(s string) (View, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Views() {
		if v.String() == name {
			return v, nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownView, s)
}
