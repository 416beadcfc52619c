package ui

import (
	"strings"

	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Page is a rendered view: its lines plus the line offset of each anchor.
type Page struct {
	View    nav.View
	Lines   []string
	Anchors map[string]int
}

// Content joins the lines for the viewport.
func (p Page) Content() string {
	return strings.Join(p.Lines, "\n")
}

// AnchorLine returns the line an anchor starts on.
func (p Page) AnchorLine(id string) (int, bool) {
	line, ok := p.Anchors[id]
	return line, ok
}

// pageBuilder accumulates blocks and records anchors at the current line.
type pageBuilder struct {
	width   int
	lines   []string
	anchors map[string]int
}

func newPageBuilder(width int) *pageBuilder {
	return &pageBuilder{width: width, anchors: make(map[string]int)}
}

// anchor marks the next line as the start of section id.
func (b *pageBuilder) anchor(id string) {
	b.anchors[id] = len(b.lines)
}

// add appends a rendered block, which may span several lines.
func (b *pageBuilder) add(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

// text appends s soft-wrapped to the page width in style.
func (b *pageBuilder) text(s string, style lipgloss.Style) {
	b.add(style.Render(textutil.Wrap(s, b.width)))
}

func (b *pageBuilder) blank() {
	b.lines = append(b.lines, "")
}

func (b *pageBuilder) rule() {
	b.add(Styles.Rule.Render(textutil.Rule(b.width)))
}

func (b *pageBuilder) build(v nav.View) Page {
	return Page{View: v, Lines: b.lines, Anchors: b.anchors}
}
