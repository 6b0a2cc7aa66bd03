package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mai/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ██╗
 ████╗ ████║██╔══██╗██║
 ██╔████╔██║███████║██║
 ██║╚██╔╝██║██╔══██║██║
 ██║ ╚═╝ ██║██║  ██║██║
 ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝`

const bannerCompact = "M A I"

// RenderBanner returns the banner styled in the primary color. It falls
// back to plain letters for terminals narrower than 28 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 28 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
