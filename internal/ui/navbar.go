package ui

import (
	"strings"

	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/site"
	"qualitybuilt/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const (
	// compactWidth is the terminal width below which links fold into a menu.
	compactWidth = 76
	// activeMarker prefixes the link of the page on screen.
	activeMarker = "• "
	// solidOffset is the home-page scroll offset past which the bar turns solid.
	solidOffset = 5
)

// Navbar is the top bar: wordmark, page links and the quote shortcut.
// Focus is -1 when no link is focused.
type Navbar struct {
	Links    []site.NavLink
	Focus    int
	MenuOpen bool
	Width    int
}

// NewNavbar creates a navbar with the site's main links.
func NewNavbar() *Navbar {
	return &Navbar{Links: site.NavLinks(), Focus: -1}
}

// Compact reports whether links are folded into the toggle menu.
func (n *Navbar) Compact() bool {
	return n.Width > 0 && n.Width < compactWidth
}

// Next focuses the following link, wrapping around.
func (n *Navbar) Next() {
	if len(n.Links) == 0 {
		return
	}
	n.Focus = (n.Focus + 1) % len(n.Links)
}

// Prev focuses the preceding link, wrapping around.
func (n *Navbar) Prev() {
	if len(n.Links) == 0 {
		return
	}
	if n.Focus <= 0 {
		n.Focus = len(n.Links) - 1
		return
	}
	n.Focus--
}

// Selected returns the focused link.
func (n *Navbar) Selected() (site.NavLink, bool) {
	if n.Focus < 0 || n.Focus >= len(n.Links) {
		return site.NavLink{}, false
	}
	return n.Links[n.Focus], true
}

// ToggleMenu opens or closes the compact menu.
func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// Dismiss clears focus and closes the menu, as after following a link.
func (n *Navbar) Dismiss() {
	n.Focus = -1
	n.MenuOpen = false
}

// Solid reports whether the bar draws its opaque background: always off the
// home page, and on it once the hero has scrolled away.
func Solid(current nav.View, yOffset int) bool {
	return current != nav.Home || yOffset > solidOffset
}

// Render draws the bar for the given page and scroll offset.
func (n *Navbar) Render(current nav.View, yOffset int) string {
	width := n.Width
	if width <= 0 {
		width = defaultPageWidth
	}
	style := Styles.NavClear
	if Solid(current, yOffset) {
		style = Styles.NavSolid
	}
	inner := width - style.GetHorizontalFrameSize()
	wordmark := Styles.Wordmark.Render(site.BrandInfo().Wordmark)

	if n.Compact() {
		toggle := "[m] Menu"
		if n.MenuOpen {
			toggle = "[m] Close"
		}
		bar := style.Width(width).Render(textutil.Spread(wordmark, Styles.NavLink.Render(toggle), inner))
		if !n.MenuOpen {
			return bar
		}
		rows := []string{bar}
		for i, l := range n.Links {
			rows = append(rows, style.Width(width).Render(n.renderLink(i, l, current)))
		}
		rows = append(rows, style.Width(width).Render(Styles.CTA.Render("[SPC f] Free Quote")))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	links := make([]string, 0, len(n.Links)+1)
	for i, l := range n.Links {
		links = append(links, n.renderLink(i, l, current))
	}
	links = append(links, Styles.CTA.Render("[SPC f] Free Quote"))
	return style.Width(width).Render(textutil.Spread(wordmark, strings.Join(links, "  "), inner))
}

// Active reports whether l leads to the page on screen. Anchor links into
// Home are sections, not pages, so they never count.
func Active(l site.NavLink, current nav.View) bool {
	return l.Anchor == "" && l.Target == current
}

func (n *Navbar) renderLink(i int, l site.NavLink, current nav.View) string {
	label := l.Label
	style := Styles.NavLink
	if Active(l, current) {
		label = activeMarker + label
		style = Styles.NavActive
	}
	if i == n.Focus {
		style = Styles.NavFocus
	}
	return style.Render(label)
}
