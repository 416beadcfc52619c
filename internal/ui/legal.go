package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// LegalRenderer turns the legal markdown into styled terminal text.
// Glamour renderers are built once per wrap width.
type LegalRenderer struct {
	byWidth map[int]*glamour.TermRenderer
}

// NewLegalRenderer creates an empty renderer cache.
func NewLegalRenderer() *LegalRenderer {
	return &LegalRenderer{byWidth: make(map[int]*glamour.TermRenderer)}
}

// Render styles md wrapped to width. If glamour fails the markdown is
// returned as-is.
func (r *LegalRenderer) Render(md string, width int) string {
	if r == nil {
		return md
	}
	tr, err := r.renderer(width)
	if err != nil {
		return md
	}
	out, err := tr.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (r *LegalRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.byWidth[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.byWidth[width] = tr
	return tr, nil
}
