package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗ ██╗   ██╗███╗   ██╗████████╗██████╗ ██████╗ ██╗██╗     ██╗
██╔════╝██╔═══██╗██║   ██║████╗  ██║╚══██╔══╝██╔══██╗██╔══██╗██║██║     ██║
██║     ██║   ██║██║   ██║██╔██╗ ██║   ██║   ██║  ██║██████╔╝██║██║     ██║
██║     ██║   ██║██║   ██║██║╚██╗██║   ██║   ██║  ██║██╔══██╗██║██║     ██║
╚██████╗╚██████╔╝╚██████╔╝██║ ╚████║   ██║   ██████╔╝██║  ██║██║███████╗███████╗
 ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const bannerCompact = "C O U N T D R I L L"

// bannerWidth is the width of bannerArt plus a column of margin each side.
const bannerWidth = 82

// RenderBanner returns the COUNTDRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
