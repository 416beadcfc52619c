// Package textutil provides width-aware layout helpers for terminal pages.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Truncate shortens s to at most width terminal columns, ending in Ellipsis
// when anything was cut. Escape sequences in styled input are kept intact
// and count as zero columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// PadRight fills plain text s with spaces to width columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// MaxWidth returns the widest of the plain strings in ss, in columns.
func MaxWidth(ss []string) int {
	w := 0
	for _, s := range ss {
		w = max(w, runewidth.StringWidth(s))
	}
	return w
}

// Spread places left and right at opposite ends of a width-column line,
// like a justify-between row. When both don't fit, right is dropped
// first and left is truncated.
func Spread(left, right string, width int) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	if lw+1+rw > width {
		if lw >= width {
			return Truncate(left, width)
		}
		return left
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

// Rule returns a horizontal line width columns wide.
func Rule(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("─", width)
}

// Wrap soft-wraps s to width columns.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
