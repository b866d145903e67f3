package render

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - pinyin
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - characters
	ColorMuted     = lipgloss.Color("#666666") // Gray - headers, scores
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Grid styles
var (
	GridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Align(lipgloss.Center)

	CellPinyinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true).
			Align(lipgloss.Center)

	BigCellStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Align(lipgloss.Center)
)

// Answer list styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PhraseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	PinyinStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
