package ui

import (
	"qualitybuilt/internal/nav"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PageView hosts the mounted page in a scrollable viewport. It is the
// document the nav.Selector scrolls.
type PageView struct {
	viewport viewport.Model
	page     Page
	mounted  bool
}

var (
	_ View         = (*PageView)(nil)
	_ nav.Scroller = (*PageView)(nil)
)

// NewPageView creates an empty page view.
func NewPageView(width, height int) *PageView {
	vp := viewport.New(width, height)
	return &PageView{viewport: vp}
}

// Mount replaces the displayed page. The scroll offset is left alone so a
// re-render of the same page keeps its position; navigation resets it
// through ScrollTop.
func (p *PageView) Mount(page Page) {
	p.page = page
	p.mounted = true
	p.viewport.SetContent(page.Content())
}

// Unmount clears the page, leaving no anchors to scroll to.
func (p *PageView) Unmount() {
	p.page = Page{}
	p.mounted = false
	p.viewport.SetContent("")
}

// Page returns the mounted page.
func (p *PageView) Page() (Page, bool) {
	return p.page, p.mounted
}

// ScrollTop implements nav.Scroller.
func (p *PageView) ScrollTop() {
	p.viewport.GotoTop()
}

// ScrollToAnchor implements nav.Scroller. The offset is clamped to the
// bottom of the page when the anchor sits on the last screen.
func (p *PageView) ScrollToAnchor(id string) bool {
	if !p.mounted {
		return false
	}
	line, ok := p.page.AnchorLine(id)
	if !ok {
		return false
	}
	p.viewport.SetYOffset(line)
	return true
}

// YOffset is the first visible line.
func (p *PageView) YOffset() int {
	return p.viewport.YOffset
}

// SetSize resizes the viewport.
func (p *PageView) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	if p.mounted {
		p.viewport.SetContent(p.page.Content())
	}
}

// Init implements View
func (p *PageView) Init() tea.Cmd {
	return nil
}

// Update implements View. Only scroll keys and the mouse wheel are handled.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			p.viewport.LineDown(1)
		case "k", "up":
			p.viewport.LineUp(1)
		case "ctrl+d", "pgdown":
			p.viewport.PageDown()
		case "ctrl+u", "pgup":
			p.viewport.PageUp()
		case "g", "home":
			p.viewport.GotoTop()
		case "G", "end":
			p.viewport.GotoBottom()
		}
		return p, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View implements View
func (p *PageView) View() string {
	return p.viewport.View()
}
