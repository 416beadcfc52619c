package ui

import "qualitybuilt/internal/nav"

// NavigateMsg asks the app to switch pages.
// Anchor is honoured only when Target is nav.Home.
type NavigateMsg struct {
	Target nav.View
	Anchor string
}

// AnchorScrollMsg is delivered when a deferred anchor scroll is due.
type AnchorScrollMsg struct {
	Request nav.AnchorRequest
}

// ScrollToAnchorMsg scrolls within the current page without navigating.
type ScrollToAnchorMsg struct {
	Anchor string
}

// ShowQuoteFormMsg opens the quote form overlay.
type ShowQuoteFormMsg struct{}

// DismissModalMsg is sent when the user closes a modal (Esc).
type DismissModalMsg struct{}

// QuoteSubmittedMsg reports a locally accepted quote request.
type QuoteSubmittedMsg struct {
	Request QuoteRequest
}

// CycleCategoryMsg advances the gallery to its next category filter.
type CycleCategoryMsg struct{}

// ToggleMenuMsg opens or closes the compact navbar menu.
type ToggleMenuMsg struct{}
