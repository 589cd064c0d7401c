// Package theme holds the active lipgloss palette and styles. Two palettes
// exist, light and dark, derived from the marketplace design tokens; Apply
// switches between them at runtime and rebuilds every style var. The TUI is
// single-threaded, so plain package-level vars are safe.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one full colour scheme.
type Palette struct {
	Primary color.Color
	Accent  color.Color
	Success color.Color
	Error   color.Color
	Text    color.Color
	TextDim color.Color
	Bg      color.Color
	BgCard  color.Color
	Border  color.Color
}

// Dark is the default scheme, built on the deep-violet brand colours.
var Dark = Palette{
	Primary: lipgloss.Color("#6B4DE6"), // Brand Violet
	Accent:  lipgloss.Color("#FFC940"), // Amber
	Success: lipgloss.Color("#34D399"), // Emerald
	Error:   lipgloss.Color("#F43F5E"), // Rose
	Text:    lipgloss.Color("#F8FAFC"), // White
	TextDim: lipgloss.Color("#94A3B8"), // Slate
	Bg:      lipgloss.Color("#1F1431"), // Deep Violet
	BgCard:  lipgloss.Color("#24173A"), // Deep Violet 2
	Border:  lipgloss.Color("#3E2E5C"), // Muted Violet
}

// Light is the same brand on a neutral background.
var Light = Palette{
	Primary: lipgloss.Color("#6B4DE6"),
	Accent:  lipgloss.Color("#A16207"), // darker amber for contrast
	Success: lipgloss.Color("#059669"),
	Error:   lipgloss.Color("#E11D48"),
	Text:    lipgloss.Color("#18181B"),
	TextDim: lipgloss.Color("#71717A"),
	Bg:      lipgloss.Color("#F7F7FB"),
	BgCard:  lipgloss.Color("#EFE9FF"), // brand pill tint
	Border:  lipgloss.Color("#D4D4D8"),
}

// Colors of the active palette.
var (
	Primary color.Color
	Accent  color.Color
	Success color.Color
	Error   color.Color
	Text    color.Color
	TextDim color.Color
	Bg      color.Color
	BgCard  color.Color
	Border  color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
)

// Components
var (
	Pill           lipgloss.Style
	PillActive     lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	BadgeAccent    lipgloss.Style
)

func init() {
	Apply(Dark)
}

// Apply makes p the active palette and rebuilds all styles from it.
func Apply(p Palette) {
	Primary = p.Primary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	Bg = p.Bg
	BgCard = p.BgCard
	Border = p.Border

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

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Pill = lipgloss.NewStyle().
		Foreground(TextDim).
		Padding(0, 1)

	PillActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color("#F8FAFC")).
		Bold(true).
		Padding(0, 1)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(lipgloss.Color("#F8FAFC")).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	BadgeAccent = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
}
