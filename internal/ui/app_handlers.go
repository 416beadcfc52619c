package ui

import (
	"slices"
	"time"

	"qualitybuilt/internal/nav"
	"qualitybuilt/internal/site"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const quoteOverlay = "quote"

// navigate switches pages. The old page is taken down first so nothing can
// scroll through its anchors; the selector resets the offset and the new
// page is mounted. An anchor on Home comes back as a deferred scroll.
func (a *AppModel) navigate(target nav.View, anchor string) tea.Cmd {
	if target != a.Current() {
		a.Category = ""
		a.Page.Unmount()
	}
	a.Navbar.Dismiss()
	req, ok := a.Selector.NavigateToAnchor(target, anchor)
	a.mount()
	if !ok {
		return nil
	}
	return scheduleAnchor(req, a.Selector.Delay())
}

// resolveAnchor runs a deferred scroll and reschedules while the anchor
// has not been mounted yet.
func (a *AppModel) resolveAnchor(req nav.AnchorRequest) tea.Cmd {
	outcome, next := a.Selector.Resolve(req)
	if outcome != nav.OutcomeRetry {
		return nil
	}
	return scheduleAnchor(next, a.Selector.PollInterval())
}

func scheduleAnchor(req nav.AnchorRequest, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AnchorScrollMsg{Request: req}
	})
}

func (a *AppModel) showQuoteForm() tea.Cmd {
	if top, ok := a.Overlays.Peek(); ok && top.Name == quoteOverlay {
		return nil
	}
	a.KeyHandler.Reset()
	a.Navbar.Dismiss()
	return a.Overlays.Push(Overlay{Name: quoteOverlay, View: NewContactFormModal()})
}

func (a *AppModel) handleQuoteSubmitted(req QuoteRequest) {
	a.Quotes = append(a.Quotes, req)
	a.Log.Info("quote request accepted",
		zap.String("name", req.Name),
		zap.String("phone", req.Phone),
		zap.String("service", req.Service),
		zap.Int("details_len", len(req.Details)))
}

// cycleCategory steps the gallery filter through "" then each category.
func (a *AppModel) cycleCategory() {
	if a.Current() != nav.Gallery {
		return
	}
	cats := site.Categories()
	i := slices.Index(cats, a.Category)
	if i+1 >= len(cats) {
		a.Category = ""
	} else {
		a.Category = cats[i+1]
	}
	a.mount()
}

// handleKey routes a key: open overlays first, then the keybind system,
// then navbar focus, then page scrolling.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg, a.Current()); consumed {
		return cmd
	}

	switch msg.String() {
	case "tab":
		a.Navbar.Next()
		return nil
	case "shift+tab":
		a.Navbar.Prev()
		return nil
	case "enter":
		if link, ok := a.Navbar.Selected(); ok {
			return navigateCmd(link.Target, link.Anchor)
		}
		return nil
	case "esc":
		a.Navbar.Dismiss()
		return nil
	}

	_, cmd := a.Page.Update(msg)
	return cmd
}
