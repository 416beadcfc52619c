package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region with its own update loop (Elm-style).
// PageView and the quote form implement it; the navbar is drawn by the app
// and has no update loop of its own.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
