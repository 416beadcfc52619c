// Package ui renders the QualityBuilt pages in the terminal with Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; owns the nav.Selector and routes messages
//   - PageView: viewport hosting the mounted page; implements nav.Scroller
//   - PageRenderer: dispatch from nav.View to page content and anchors
//   - Navbar: menu links, focus and the collapsible narrow-width menu
//   - KeyHandler: leader-key (SPC) bindings
//   - OverlayStack: modal views such as the quote form
package ui
