package ui

import (
	"qualitybuilt/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC,
// listing the leader bindings that apply on page v.
func RenderKeybindHelp(keyHandler *KeyHandler, v nav.View) string {
	if keyHandler == nil {
		return ""
	}
	keyMap := NewKeyMap(keyHandler.Registry, keyHandler, v)
	if len(keyMap.ShortHelp()) == 0 {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(0, 1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpModel.View(keyMap))
}
