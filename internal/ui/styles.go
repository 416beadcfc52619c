package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorBrand   = "208" // Orange - brand accent, CTAs
	ColorInk     = "252" // Light gray - body text
	ColorMuted   = "244" // Gray - captions, hints
	ColorDim     = "240" // Darker gray - rules, footer
	ColorSurface = "236" // Dark gray - solid navbar background
	ColorDanger  = "196" // Red - form errors
	ColorSuccess = "42"  // Green - confirmations, checkmarks
)

// Styles contains shared style definitions used across pages and modals.
var Styles = struct {
	Wordmark  lipgloss.Style // Bold brand wordmark in the navbar
	NavSolid  lipgloss.Style // Navbar once scrolled or off the home page
	NavClear  lipgloss.Style // Navbar floating over the hero
	NavLink   lipgloss.Style
	NavFocus  lipgloss.Style
	NavActive lipgloss.Style // Link of the page on screen

	Kicker  lipgloss.Style // Small uppercase section label
	Heading lipgloss.Style // Section heading
	Title   lipgloss.Style // Card and item titles
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Badge   lipgloss.Style // Category or badge chips
	CTA     lipgloss.Style // Call-to-action hint
	Check   lipgloss.Style // Checkmark bullets
	Quote   lipgloss.Style // Pull quote
	Rule    lipgloss.Style
	Footer  lipgloss.Style
	Status  lipgloss.Style

	Box       lipgloss.Style // Modal box
	Label     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	FieldOn   lipgloss.Style
	FieldOff  lipgloss.Style
	ButtonOn  lipgloss.Style
	ButtonOff lipgloss.Style
}{
	Wordmark: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrand)),
	NavSolid: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSurface)).
		Padding(0, 1),
	NavClear: lipgloss.NewStyle().
		Padding(0, 1),
	NavLink: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)),
	NavFocus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true).
		Underline(true),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)),
	Kicker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)),
	Title: lipgloss.NewStyle().
		Bold(true),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)),
	CTA: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true),
	Check: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Quote: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(1, 2),
	Label: lipgloss.NewStyle().
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true),
	FieldOn: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)),
	FieldOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	ButtonOn: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBrand)).
		Foreground(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 2),
	ButtonOff: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
}
