package ui

import "slices"

// FocusRing tracks which form field has focus and rotates through them in
// tab order, wrapping at both ends.
type FocusRing struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order
	OnChange func(from, to string)
}

// NewFocusRing focuses the first field of order.
func NewFocusRing(order ...string) *FocusRing {
	f := &FocusRing{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next moves focus forward and returns the new field ID.
func (f *FocusRing) Next() string {
	return f.step(1)
}

// Prev moves focus backward and returns the new field ID.
func (f *FocusRing) Prev() string {
	return f.step(-1)
}

func (f *FocusRing) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in the ring.
func (f *FocusRing) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id has focus.
func (f *FocusRing) Is(id string) bool {
	return f.Current == id
}

func (f *FocusRing) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
