package ui

import (
	"github.com/adriangreen/timebox/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Fixed colors not covered by the theme
const (
	ColorBorder    = "#555555"
	ColorText      = "#FFFFFF"
	ColorHighlight = "#00FFFF"
	ColorKeyBg     = "#222222"
)

// Styles contains all the lipgloss styles for the TUI
type Styles struct {
	// Layout styles
	Header    lipgloss.Style
	StatusBar lipgloss.Style

	// Panel styles
	Panel       lipgloss.Style
	PanelActive lipgloss.Style
	PanelTitle  lipgloss.Style

	// Task styles
	TaskSelected lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskDone     lipgloss.Style
	TaskEditing  lipgloss.Style
	Details      lipgloss.Style

	// Form styles
	FormLabel   lipgloss.Style
	FormFocused lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Key     lipgloss.Style
}

// NewStyles builds the styles from a theme, using defaults for empty colors
func NewStyles(theme config.ThemeConfig) *Styles {
	def := config.Default().Theme
	pick := func(v, fallback string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(v)
	}

	primary := pick(theme.PrimaryColor, def.PrimaryColor)
	accent := pick(theme.AccentColor, def.AccentColor)
	success := pick(theme.SuccessColor, def.SuccessColor)
	errColor := pick(theme.ErrorColor, def.ErrorColor)
	warning := pick(theme.WarningColor, def.WarningColor)
	subtle := pick(theme.SubtleColor, def.SubtleColor)

	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorText)).
			Background(primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1),

		PanelActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		TaskSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),

		TaskNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorText)),

		TaskDone: lipgloss.NewStyle().
			Foreground(success).
			Strikethrough(true),

		TaskEditing: lipgloss.NewStyle().
			Foreground(warning),

		Details: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(2),

		FormLabel: lipgloss.NewStyle().
			Foreground(subtle),

		FormFocused: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtle: lipgloss.NewStyle().
			Foreground(subtle),

		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(warning),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Info: lipgloss.NewStyle().
			Foreground(primary),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Background(lipgloss.Color(ColorKeyBg)).
			Padding(0, 1).
			Bold(true),
	}
}
