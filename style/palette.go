package style

import "github.com/charmbracelet/lipgloss"

// BiliBili brand colors, with a neutral text tone for body copy in banners.
var (
	Pink = lipgloss.Color("#fb7299")
	Blue = lipgloss.Color("#00a1d6")
	Text = lipgloss.Color("#cdd6f4")
	Red  = lipgloss.Color("#f38ba8")

	AccentColor = Blue
	HiRed       = Red
)
