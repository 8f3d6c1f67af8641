package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — lantern red and gold over a dark slate background
var (
	Primary   = lipgloss.Color("#E84545") // Lantern Red
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F6C453") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Hanzi = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Pinyin = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Favorite = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(Success)
)

// BadgeColor resolves a catalog badge color token to a palette color.
// Unknown tokens fall back to the dim text color.
func BadgeColor(token string) color.Color {
	switch token {
	case "primary":
		return Primary
	case "secondary":
		return Secondary
	case "accent":
		return Accent
	case "success":
		return Success
	default:
		return TextDim
	}
}
